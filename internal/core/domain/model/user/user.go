package user

import (
	"errors"
	"strings"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through the NewUser or RestoreUser factory functions.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// User represents a registered identity in the system.
//
// Invariants:
//   - Identity (id, username, email) is immutable after registration
//   - Username and email are unique across the system (enforced at the
//     persistence layer)
//   - The credential hash is never empty
//   - Role is one of the enumerated valid roles
type User struct {
	id           kernel.UUID
	username     string
	email        string
	role         Role
	passwordHash []byte
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewUser creates a User at registration time with validation. The password
// hash must already be produced by the credential store collaborator; this
// aggregate never sees plaintext passwords.
func NewUser(id kernel.UUID, username, email string, role Role, passwordHash []byte) (*User, error) {
	u := &User{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence, preserving its original
// creation timestamp.
func RestoreUser(
	id kernel.UUID,
	username, email string,
	role Role,
	passwordHash []byte,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setEmail(email),
		u.setRole(role),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a factory function.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// IsEqual compares two users by identifier.
func (u *User) IsEqual(other *User) bool {
	return other != nil && u.id.IsEqual(other.id)
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the login name.
func (u *User) Username() string {
	return u.username
}

// Email returns the registration email address.
func (u *User) Email() string {
	return u.email
}

// Role returns the user's access role.
func (u *User) Role() Role {
	return u.role
}

// PasswordHash returns the stored credential hash.
func (u *User) PasswordHash() []byte {
	return u.passwordHash
}

// CreatedAt returns the registration timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// Principal returns the authorization view of this user.
func (u *User) Principal() Principal {
	return Principal{ID: u.id, Role: u.role}
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	if len(username) < 3 {
		return errs.NewValueIsOutOfRangeError("username length", len(username), 3, 64)
	}
	u.username = username
	return nil
}

func (u *User) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setPasswordHash(hash []byte) error {
	if len(hash) == 0 {
		return errs.NewValueIsRequiredError("password hash")
	}
	u.passwordHash = hash
	return nil
}
