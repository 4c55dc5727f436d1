package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand represents a request to register a new user identity.
// Carries the plaintext password only as far as the handler, which hashes
// it before anything touches storage.
type RegisterUserCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand creates a command to register a new user.
// Validates username length, email shape, password length and role.
func NewRegisterUserCommand(
	userID kernel.UUID,
	username, email, password string,
	role user.Role,
) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setUsername(username),
		cmd.setEmail(email),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

// UserID returns the identifier assigned to the new user.
func (c RegisterUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Username returns the requested login name.
func (c RegisterUserCommand) Username() string {
	return c.username
}

// Email returns the registration email address.
func (c RegisterUserCommand) Email() string {
	return c.email
}

// Password returns the plaintext password to be hashed by the handler.
func (c RegisterUserCommand) Password() string {
	return c.password
}

// Role returns the requested access role.
func (c RegisterUserCommand) Role() user.Role {
	return c.role
}

func (c *RegisterUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *RegisterUserCommand) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}

	c.username = username
	return nil
}

func (c *RegisterUserCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password string) error {
	if len(password) < 6 {
		return errs.NewValueIsOutOfRangeError("password length", len(password), 6, 72)
	}

	c.password = password
	return nil
}

func (c *RegisterUserCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
