package commands

import (
	"context"

	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
)

// DeleteDocumentCommandHandler handles document deletion. The backing
// bytes are removed before the record inside the transaction; a storage
// failure aborts the operation and leaves the record untouched, so a
// record never points at missing bytes.
type DeleteDocumentCommandHandler struct {
	uowFactory   DocumentUoWFactory
	fileStore    ports.FileStore
	accessPolicy services.AccessPolicy
}

// NewDeleteDocumentCommandHandler creates a handler for deletion operations.
func NewDeleteDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	fileStore ports.FileStore,
	accessPolicy services.AccessPolicy,
) DeleteDocumentCommandHandler {
	return DeleteDocumentCommandHandler{
		uowFactory:   uowFactory,
		fileStore:    fileStore,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the deletion command. The caller must own the
// document's order or hold the operator role.
func (h *DeleteDocumentCommandHandler) Handle(ctx context.Context, cmd DeleteDocumentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	doc, err := uow.DocumentRepository().Get(ctx, cmd.DocumentID())
	if err != nil {
		return err
	}

	owningOrder, err := uow.OrderRepository().Get(ctx, doc.OrderID())
	if err != nil {
		return err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(cmd.Principal(), owningOrder.UserID(), user.RoleOperator); err != nil {
		return err
	}

	if err = h.fileStore.Delete(ctx, doc.StorageKey()); err != nil {
		return err
	}

	if err = uow.DocumentRepository().Delete(ctx, doc.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
