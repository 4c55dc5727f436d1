package queries

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/guard"
)

var ErrGetUserQueryIsNotConstructed = errors.New(
	"GetUserQuery must be created via NewGetUserQuery constructor",
)

// GetUserQuery retrieves a user profile. Plain users see only their own
// profile; operators and admins see any profile.
type GetUserQuery struct {
	userID    kernel.UUID
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewGetUserQuery creates a query to retrieve a user profile.
func NewGetUserQuery(userID kernel.UUID, principal user.Principal) (GetUserQuery, error) {
	if err := errors.Join(userID.Validate(), principal.Validate()); err != nil {
		return GetUserQuery{}, err
	}

	return GetUserQuery{
		userID:    userID,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetUserQuery) Validate() error {
	return q.guard.Validate(ErrGetUserQueryIsNotConstructed)
}

// UserID returns the identifier of the profile to retrieve.
func (q GetUserQuery) UserID() kernel.UUID {
	return q.userID
}

// Principal returns the caller's identity.
func (q GetUserQuery) Principal() user.Principal {
	return q.principal
}

// UserResponse represents a single user row without credentials.
type UserResponse struct {
	ID        kernel.UUID
	Username  string
	Email     string
	Role      user.Role
	CreatedAt time.Time
}
