package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrGetDocumentQueryIsNotConstructed = errors.New(
	"GetDocumentQuery must be created via NewGetDocumentQuery constructor",
)

// GetDocumentQuery retrieves a single document. Plain users see only
// documents attached to their own orders.
type GetDocumentQuery struct {
	documentID kernel.UUID
	principal  user.Principal

	guard guard.ConstructorGuard
}

// NewGetDocumentQuery creates a query to retrieve a document.
func NewGetDocumentQuery(documentID kernel.UUID, principal user.Principal) (GetDocumentQuery, error) {
	if err := errors.Join(documentID.Validate(), principal.Validate()); err != nil {
		return GetDocumentQuery{}, err
	}

	return GetDocumentQuery{
		documentID: documentID,
		principal:  principal,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDocumentQuery) Validate() error {
	return q.guard.Validate(ErrGetDocumentQueryIsNotConstructed)
}

// DocumentID returns the identifier of the document to retrieve.
func (q GetDocumentQuery) DocumentID() kernel.UUID {
	return q.documentID
}

// Principal returns the caller's identity.
func (q GetDocumentQuery) Principal() user.Principal {
	return q.principal
}

// DocumentResponse represents a single document row.
type DocumentResponse struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	Filename    string
	StorageKey  string
	ContentType string
	Status      document.Status
	UploadedAt  time.Time
}
