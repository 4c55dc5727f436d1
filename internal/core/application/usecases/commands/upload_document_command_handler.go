package commands

import (
	"context"
	"fmt"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
)

// UploadDocumentCommandHandler handles document uploads. The bytes are
// written to the file store before the record is committed; if the record
// cannot be committed the written bytes are removed again, best effort.
type UploadDocumentCommandHandler struct {
	uowFactory   DocumentUoWFactory
	fileStore    ports.FileStore
	accessPolicy services.AccessPolicy
}

// NewUploadDocumentCommandHandler creates a handler for upload operations.
func NewUploadDocumentCommandHandler(
	uowFactory DocumentUoWFactory,
	fileStore ports.FileStore,
	accessPolicy services.AccessPolicy,
) UploadDocumentCommandHandler {
	return UploadDocumentCommandHandler{
		uowFactory:   uowFactory,
		fileStore:    fileStore,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the upload command. The owning order must exist and
// the caller must own it or hold the operator role.
func (h *UploadDocumentCommandHandler) Handle(ctx context.Context, cmd UploadDocumentCommand) error {
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

	owningOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(cmd.Principal(), owningOrder.UserID(), user.RoleOperator); err != nil {
		return err
	}

	key := storageKey(cmd)
	if err = h.fileStore.Write(ctx, key, cmd.Content(), cmd.Size(), cmd.ContentType()); err != nil {
		return err
	}

	newDocument, err := document.NewDocument(cmd.DocumentID(), cmd.OrderID(), cmd.Filename(), key, cmd.ContentType())
	if err != nil {
		h.discard(ctx, key)
		return err
	}

	if err = uow.DocumentRepository().Add(ctx, newDocument); err != nil {
		h.discard(ctx, key)
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		h.discard(ctx, key)
		return err
	}

	return nil
}

func (h *UploadDocumentCommandHandler) discard(ctx context.Context, key string) {
	_ = h.fileStore.Delete(ctx, key)
}

func storageKey(cmd UploadDocumentCommand) string {
	return fmt.Sprintf("orders/%s/%s/%s", cmd.OrderID(), cmd.DocumentID(), cmd.Filename())
}
