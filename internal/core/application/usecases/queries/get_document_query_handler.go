package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/pkg/errs"
)

// GetDocumentQueryHandler reads a single document row joined with its
// owning order for the ownership check.
type GetDocumentQueryHandler struct {
	db           *gorm.DB
	accessPolicy services.AccessPolicy
}

// NewGetDocumentQueryHandler creates a handler for document queries.
func NewGetDocumentQueryHandler(db *gorm.DB, accessPolicy services.AccessPolicy) GetDocumentQueryHandler {
	return GetDocumentQueryHandler{db: db, accessPolicy: accessPolicy}
}

// Handle executes the query. The caller must own the document's order or
// hold the operator role.
func (h GetDocumentQueryHandler) Handle(ctx context.Context, query GetDocumentQuery) (DocumentResponse, error) {
	if err := query.Validate(); err != nil {
		return DocumentResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.order_id,
			o.user_id,
			d.filename,
			d.storage_key,
			d.content_type,
			d.status,
			d.uploaded_at
		FROM documents d
		JOIN orders o ON o.id = d.order_id
		WHERE d.id = ?
	`, query.DocumentID().String()).Rows()
	if err != nil {
		return DocumentResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DocumentResponse{}, err
		}
		return DocumentResponse{}, errs.NewObjectNotFoundError("document", query.DocumentID())
	}

	var (
		id          uuid.UUID
		orderID     uuid.UUID
		ownerID     uuid.UUID
		filename    string
		storageKey  string
		contentType string
		statusName  string
		uploadedAt  time.Time
	)
	if err = rows.Scan(&id, &orderID, &ownerID, &filename, &storageKey, &contentType, &statusName, &uploadedAt); err != nil {
		return DocumentResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return DocumentResponse{}, err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(query.Principal(), owner, user.RoleOperator); err != nil {
		return DocumentResponse{}, err
	}

	documentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return DocumentResponse{}, err
	}

	owningOrderID, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return DocumentResponse{}, err
	}

	status, err := document.StatusFromString(statusName)
	if err != nil {
		return DocumentResponse{}, err
	}

	return DocumentResponse{
		ID:          documentID,
		OrderID:     owningOrderID,
		Filename:    filename,
		StorageKey:  storageKey,
		ContentType: contentType,
		Status:      status,
		UploadedAt:  uploadedAt,
	}, nil
}
