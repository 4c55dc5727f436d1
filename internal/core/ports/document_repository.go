package ports

import (
	"context"

	"docflow/internal/core/domain/model/document"
	"docflow/internal/core/domain/model/kernel"
)

// DocumentRepository defines the persistence contract for document aggregates.
type DocumentRepository interface {
	// Add persists a new document aggregate to storage.
	Add(ctx context.Context, aggregate *document.Document) error

	// Update persists changes to an existing document aggregate.
	Update(ctx context.Context, aggregate *document.Document) error

	// Delete removes a document record. The backing bytes in the file
	// store are removed separately by the use case.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a document aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*document.Document, error)

	// GetAllByOrderID retrieves all documents attached to the given order.
	GetAllByOrderID(ctx context.Context, orderID kernel.UUID) ([]*document.Document, error)
}
