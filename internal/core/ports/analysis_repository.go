package ports

import (
	"context"

	"docflow/internal/core/domain/model/analysis"
	"docflow/internal/core/domain/model/kernel"
)

// AnalysisRepository defines the persistence contract for analysis aggregates.
// At most one analysis exists per order; the storage layer enforces this
// with a uniqueness constraint and Add surfaces violations as conflicts.
type AnalysisRepository interface {
	// Add persists a new analysis aggregate to storage.
	Add(ctx context.Context, aggregate *analysis.Analysis) error

	// Update persists changes to an existing analysis aggregate.
	Update(ctx context.Context, aggregate *analysis.Analysis) error

	// Get retrieves an analysis aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*analysis.Analysis, error)

	// GetByOrderID retrieves the analysis attached to the given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*analysis.Analysis, error)

	// GetAllInProgress retrieves analyses awaiting completion.
	// Used by the completion job to find work.
	GetAllInProgress(ctx context.Context) ([]*analysis.Analysis, error)
}
