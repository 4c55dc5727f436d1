package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order. Plain users see only their own
// orders; operators and admins see any order.
type GetOrderQuery struct {
	orderID   kernel.UUID
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order.
func NewGetOrderQuery(orderID kernel.UUID, principal user.Principal) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), principal.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID:   orderID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Principal returns the caller's identity.
func (q GetOrderQuery) Principal() user.Principal {
	return q.principal
}

// OrderResponse represents a single order row.
type OrderResponse struct {
	ID        kernel.UUID
	UserID    kernel.UUID
	Status    order.Status
	Total     kernel.Money
	CreatedAt time.Time
	UpdatedAt time.Time
}
