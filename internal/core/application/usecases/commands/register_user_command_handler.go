package commands

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"docflow/internal/core/domain/model/user"
)

// RegisterUserCommandHandler handles the business logic for user registration.
// Hashes the password with bcrypt and persists the new identity. Username
// and email uniqueness violations surface from the repository as duplicate
// identity errors.
type RegisterUserCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewRegisterUserCommandHandler creates a handler for registration operations.
func NewRegisterUserCommandHandler(uowFactory UserUoWFactory) RegisterUserCommandHandler {
	return RegisterUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterUserCommandHandler) Handle(ctx context.Context, cmd RegisterUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	newUser, err := user.NewUser(cmd.UserID(), cmd.Username(), cmd.Email(), cmd.Role(), hash)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
