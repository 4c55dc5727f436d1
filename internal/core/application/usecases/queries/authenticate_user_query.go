// Package queries contains read-only operations over the persistent store.
// Implements the Query side of the CQRS architecture: handlers read rows
// directly instead of going through aggregates and repositories.
package queries

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrAuthenticateUserQueryIsNotConstructed = errors.New(
	"AuthenticateUserQuery must be created via NewAuthenticateUserQuery constructor",
)

// AuthenticateUserQuery checks a username/password pair against the
// stored credentials and yields the caller's principal on success.
type AuthenticateUserQuery struct {
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateUserQuery creates a query to authenticate a user.
func NewAuthenticateUserQuery(username, password string) (AuthenticateUserQuery, error) {
	if username == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		return AuthenticateUserQuery{}, errs.NewValueIsRequiredError("password")
	}

	return AuthenticateUserQuery{
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q AuthenticateUserQuery) Validate() error {
	return q.guard.Validate(ErrAuthenticateUserQueryIsNotConstructed)
}

// Username returns the login name to check.
func (q AuthenticateUserQuery) Username() string {
	return q.username
}

// Password returns the plaintext password to check.
func (q AuthenticateUserQuery) Password() string {
	return q.password
}

// AuthenticateUserQueryResponse carries the authenticated identity.
type AuthenticateUserQueryResponse struct {
	UserID   kernel.UUID
	Username string
	Email    string
	Role     user.Role
}

// Principal returns the authorization view of the authenticated user.
func (r AuthenticateUserQueryResponse) Principal() user.Principal {
	return user.Principal{ID: r.UserID, Role: r.Role}
}
