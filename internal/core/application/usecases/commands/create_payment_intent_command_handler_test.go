package commands_test

import (
	"errors"
	"testing"
	"time"

	"docflow/internal/core/application/usecases/commands"
	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/payment"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredPayment(t *testing.T, orderID kernel.UUID, intentID string, status payment.Status) *payment.Payment {
	t.Helper()
	amount, err := kernel.MoneyFromFloat(25.00)
	require.NoError(t, err)
	now := time.Now().UTC()
	p, err := payment.RestorePayment(kernel.NewUUID(), orderID, intentID, amount, "usd", status, now, now)
	require.NoError(t, err)
	return p
}

func TestCreatePaymentIntentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	amount, _ := kernel.MoneyFromFloat(25.00)

	cmd, err := commands.NewCreatePaymentIntentCommand(
		kernel.NewUUID(), owningOrder.ID(), userPrincipal(ownerID), amount, "usd")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("payment", owningOrder.ID())).Once(),
		processor.On("CreateIntent", mock.Anything, amount, "usd", owningOrder.ID()).
			Return(ports.PaymentIntent{ID: "pi_123", ClientSecret: "pi_123_secret", Status: "requires_payment_method"}, nil).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, processor, services.NewAccessPolicy())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "pi_123", result.IntentID)
	require.Equal(t, "pi_123_secret", result.ClientSecret)
	added := paymentRepo.Calls[1].Arguments.Get(1).(*payment.Payment)
	require.Equal(t, payment.Pending, added.Status())
	require.Equal(t, "pi_123", added.IntentID())
	processor.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_ConflictWhenSlotOccupied(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	existing := restoredPayment(t, owningOrder.ID(), "pi_existing", payment.Pending)
	amount, _ := kernel.MoneyFromFloat(25.00)

	cmd, err := commands.NewCreatePaymentIntentCommand(
		kernel.NewUUID(), owningOrder.ID(), userPrincipal(ownerID), amount, "usd")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, processor, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	processor.AssertNotCalled(t, "CreateIntent")
	uow.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_FailedPaymentReleasesSlot(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	failed := restoredPayment(t, owningOrder.ID(), "pi_failed", payment.Failed)
	amount, _ := kernel.MoneyFromFloat(25.00)

	cmd, err := commands.NewCreatePaymentIntentCommand(
		kernel.NewUUID(), owningOrder.ID(), userPrincipal(ownerID), amount, "usd")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).Return(failed, nil).Once(),
		processor.On("CreateIntent", mock.Anything, amount, "usd", owningOrder.ID()).
			Return(ports.PaymentIntent{ID: "pi_retry", ClientSecret: "pi_retry_secret"}, nil).Once(),
		paymentRepo.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, processor, services.NewAccessPolicy())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "pi_retry", result.IntentID)
	uow.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_ProcessorFailurePersistsNothing(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	amount, _ := kernel.MoneyFromFloat(25.00)

	cmd, err := commands.NewCreatePaymentIntentCommand(
		kernel.NewUUID(), owningOrder.ID(), userPrincipal(ownerID), amount, "usd")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByOrderID", mock.Anything, owningOrder.ID()).
			Return(nil, errs.NewObjectNotFoundError("payment", owningOrder.ID())).Once(),
		processor.On("CreateIntent", mock.Anything, amount, "usd", owningOrder.ID()).
			Return(ports.PaymentIntent{}, errs.NewPaymentProcessingErrorWithCause("card declined", errors.New("processor refused"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, processor, services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPaymentProcessing)
	paymentRepo.AssertNotCalled(t, "Add")
	uow.AssertExpectations(t)
}

func TestCreatePaymentIntentCommandHandler_Handle_ForbiddenForStranger(t *testing.T) {
	ctx := t.Context()
	owningOrder := restoredOrder(t, kernel.NewUUID(), order.Pending)
	amount, _ := kernel.MoneyFromFloat(25.00)

	cmd, err := commands.NewCreatePaymentIntentCommand(
		kernel.NewUUID(), owningOrder.ID(), userPrincipal(kernel.NewUUID()), amount, "usd")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreatePaymentIntentCommandHandler(factory, new(MockPaymentProcessor), services.NewAccessPolicy())
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrAccessForbidden)
	uow.AssertExpectations(t)
}
