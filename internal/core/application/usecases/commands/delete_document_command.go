package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrDeleteDocumentCommandIsNotConstructed = errors.New(
	"DeleteDocumentCommand must be created via NewDeleteDocumentCommand constructor",
)

// DeleteDocumentCommand represents a request to remove a document and its
// stored bytes.
type DeleteDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID kernel.UUID
	principal  user.Principal

	guard guard.ConstructorGuard
}

// NewDeleteDocumentCommand creates a command to delete a document.
func NewDeleteDocumentCommand(documentID kernel.UUID, principal user.Principal) (DeleteDocumentCommand, error) {
	cmd := DeleteDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setPrincipal(principal),
	); err != nil {
		return DeleteDocumentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteDocumentCommand) Validate() error {
	return c.guard.Validate(ErrDeleteDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier of the document to delete.
func (c DeleteDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// Principal returns the caller's identity.
func (c DeleteDocumentCommand) Principal() user.Principal {
	return c.principal
}

func (c *DeleteDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}

	c.documentID = documentID
	return nil
}

func (c *DeleteDocumentCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
