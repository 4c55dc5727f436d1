package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for payment aggregates.
// At most one non-failed payment exists per order; the storage layer
// enforces this with a uniqueness constraint and Add surfaces violations
// as conflicts.
type PaymentRepository interface {
	// Add persists a new payment aggregate to storage.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// Update persists changes to an existing payment aggregate.
	Update(ctx context.Context, aggregate *payment.Payment) error

	// Get retrieves a payment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*payment.Payment, error)

	// GetByOrderID retrieves the most recent payment attached to the
	// given order.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*payment.Payment, error)

	// GetByIntentID retrieves the payment carrying the given processor
	// intent reference. Used during confirmation.
	GetByIntentID(ctx context.Context, intentID string) (*payment.Payment, error)
}
