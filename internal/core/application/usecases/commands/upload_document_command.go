package commands

import (
	"errors"
	"io"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrUploadDocumentCommandIsNotConstructed = errors.New(
	"UploadDocumentCommand must be created via NewUploadDocumentCommand constructor",
)

// UploadDocumentCommand represents a request to attach a file to an order.
// The content reader is consumed exactly once by the handler.
type UploadDocumentCommand struct { //nolint:recvcheck //using for validation
	documentID  kernel.UUID
	orderID     kernel.UUID
	principal   user.Principal
	filename    string
	contentType string
	content     io.Reader
	size        int64

	guard guard.ConstructorGuard
}

// NewUploadDocumentCommand creates a command to upload a document.
// Validates identifiers, filename and content presence.
func NewUploadDocumentCommand(
	documentID, orderID kernel.UUID,
	principal user.Principal,
	filename, contentType string,
	content io.Reader,
	size int64,
) (UploadDocumentCommand, error) {
	cmd := UploadDocumentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDocumentID(documentID),
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setFilename(filename),
		cmd.setContent(content, size),
	); err != nil {
		return UploadDocumentCommand{}, err
	}

	cmd.contentType = contentType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadDocumentCommand) Validate() error {
	return c.guard.Validate(ErrUploadDocumentCommandIsNotConstructed)
}

// DocumentID returns the identifier assigned to the new document.
func (c UploadDocumentCommand) DocumentID() kernel.UUID {
	return c.documentID
}

// OrderID returns the identifier of the owning order.
func (c UploadDocumentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the caller's identity.
func (c UploadDocumentCommand) Principal() user.Principal {
	return c.principal
}

// Filename returns the original upload filename.
func (c UploadDocumentCommand) Filename() string {
	return c.filename
}

// ContentType returns the MIME type supplied with the upload.
func (c UploadDocumentCommand) ContentType() string {
	return c.contentType
}

// Content returns the file content reader.
func (c UploadDocumentCommand) Content() io.Reader {
	return c.content
}

// Size returns the content length in bytes.
func (c UploadDocumentCommand) Size() int64 {
	return c.size
}

func (c *UploadDocumentCommand) setDocumentID(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}

	c.documentID = documentID
	return nil
}

func (c *UploadDocumentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UploadDocumentCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *UploadDocumentCommand) setFilename(filename string) error {
	if filename == "" {
		return errs.NewValueIsRequiredError("filename")
	}

	c.filename = filename
	return nil
}

func (c *UploadDocumentCommand) setContent(content io.Reader, size int64) error {
	if content == nil {
		return errs.NewValueIsRequiredError("content")
	}
	if size <= 0 {
		return errs.NewValueIsInvalidError("content size")
	}

	c.content = content
	c.size = size
	return nil
}
