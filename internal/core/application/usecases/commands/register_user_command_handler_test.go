package commands_test

import (
	"testing"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegisterUserCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "alice", "alice@example.com", "secret1", user.RoleUser)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	added := repo.Calls[0].Arguments.Get(1).(*user.User)
	require.NoError(t, bcrypt.CompareHashAndPassword(added.PasswordHash(), []byte("secret1")))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterUserCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RegisterUserCommand{}

	factory := new(MockUserUoWFactory)
	h := commands.NewRegisterUserCommandHandler(factory)

	require.Error(t, h.Handle(ctx, cmd))
}

func TestRegisterUserCommandHandler_Handle_DuplicateIdentity(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRegisterUserCommand(
		kernel.NewUUID(), "alice", "alice@example.com", "secret1", user.RoleUser)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*user.User")).
			Return(errs.NewDuplicateIdentityError("username", "alice")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterUserCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateIdentity)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
