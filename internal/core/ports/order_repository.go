package ports

import (
	"context"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByUserID retrieves all orders placed by the given user,
	// newest first.
	GetAllByUserID(ctx context.Context, userID kernel.UUID) ([]*order.Order, error)
}
