package queries

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrListUserOrdersQueryIsNotConstructed = errors.New(
	"ListUserOrdersQuery must be created via NewListUserOrdersQuery constructor",
)

// ListUserOrdersQuery retrieves all orders of one user, newest first.
// Plain users may list only their own orders.
type ListUserOrdersQuery struct {
	userID    kernel.UUID
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewListUserOrdersQuery creates a query to list a user's orders.
func NewListUserOrdersQuery(userID kernel.UUID, principal user.Principal) (ListUserOrdersQuery, error) {
	if err := errors.Join(userID.Validate(), principal.Validate()); err != nil {
		return ListUserOrdersQuery{}, err
	}

	return ListUserOrdersQuery{
		userID:    userID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListUserOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListUserOrdersQueryIsNotConstructed)
}

// UserID returns the identifier of the user whose orders are listed.
func (q ListUserOrdersQuery) UserID() kernel.UUID {
	return q.userID
}

// Principal returns the caller's identity.
func (q ListUserOrdersQuery) Principal() user.Principal {
	return q.principal
}
