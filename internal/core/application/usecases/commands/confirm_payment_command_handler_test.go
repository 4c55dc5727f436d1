package commands_test

import (
	"testing"

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

func TestConfirmPaymentCommandHandler_Handle_Succeeded(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	pending := restoredPayment(t, owningOrder.ID(), "pi_123", payment.Pending)

	cmd, err := commands.NewConfirmPaymentCommand(owningOrder.ID(), "pi_123", userPrincipal(ownerID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByIntentID", mock.Anything, "pi_123").Return(pending, nil).Once(),
		processor.On("RetrieveIntent", mock.Anything, "pi_123").
			Return(ports.PaymentIntent{ID: "pi_123", Status: "succeeded"}, nil).Once(),
		paymentRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, owningOrder).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyPaymentSucceeded", ctx, owningOrder.ID(), pending.ID()).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, processor, services.NewAccessPolicy(), notifier)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, payment.Succeeded, result.Status)
	require.Equal(t, payment.Succeeded, pending.Status())
	require.Equal(t, order.Paid, owningOrder.Status())
	notifier.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_MirrorsNonSucceededStatus(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	pending := restoredPayment(t, owningOrder.ID(), "pi_123", payment.Pending)

	cmd, err := commands.NewConfirmPaymentCommand(owningOrder.ID(), "pi_123", userPrincipal(ownerID))
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
		paymentRepo.On("GetByIntentID", mock.Anything, "pi_123").Return(pending, nil).Once(),
		processor.On("RetrieveIntent", mock.Anything, "pi_123").
			Return(ports.PaymentIntent{ID: "pi_123", Status: "canceled"}, nil).Once(),
		paymentRepo.On("Update", mock.Anything, pending).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, processor, services.NewAccessPolicy(), new(MockNotifier))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrPaymentProcessing)
	require.Equal(t, payment.Failed, pending.Status())
	require.Equal(t, order.Pending, owningOrder.Status())
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_RetryAfterSucceeded(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Paid)
	succeeded := restoredPayment(t, owningOrder.ID(), "pi_123", payment.Succeeded)

	cmd, err := commands.NewConfirmPaymentCommand(owningOrder.ID(), "pi_123", userPrincipal(ownerID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	processor := new(MockPaymentProcessor)
	notifier := new(MockNotifier)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByIntentID", mock.Anything, "pi_123").Return(succeeded, nil).Once(),
		processor.On("RetrieveIntent", mock.Anything, "pi_123").
			Return(ports.PaymentIntent{ID: "pi_123", Status: "succeeded"}, nil).Once(),
		paymentRepo.On("Update", mock.Anything, succeeded).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("NotifyPaymentSucceeded", ctx, owningOrder.ID(), succeeded.ID()).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, processor, services.NewAccessPolicy(), notifier)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, payment.Succeeded, result.Status)
	require.Equal(t, order.Paid, owningOrder.Status())
	orderRepo.AssertNotCalled(t, "Update")
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_UnknownIntent(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)

	cmd, err := commands.NewConfirmPaymentCommand(owningOrder.ID(), "pi_missing", userPrincipal(ownerID))
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, owningOrder.ID()).Return(owningOrder, nil).Once(),
		uow.On("PaymentRepository").Return(paymentRepo).Once(),
		paymentRepo.On("GetByIntentID", mock.Anything, "pi_missing").
			Return(nil, errs.NewObjectNotFoundError("payment", "pi_missing")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(
		factory, new(MockPaymentProcessor), services.NewAccessPolicy(), new(MockNotifier))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestConfirmPaymentCommandHandler_Handle_IntentBelongsToAnotherOrder(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	owningOrder := restoredOrder(t, ownerID, order.Pending)
	foreign := restoredPayment(t, kernel.NewUUID(), "pi_123", payment.Pending)

	cmd, err := commands.NewConfirmPaymentCommand(owningOrder.ID(), "pi_123", userPrincipal(ownerID))
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
		paymentRepo.On("GetByIntentID", mock.Anything, "pi_123").Return(foreign, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConfirmPaymentCommandHandler(factory, processor, services.NewAccessPolicy(), new(MockNotifier))
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	processor.AssertNotCalled(t, "RetrieveIntent")
	uow.AssertExpectations(t)
}
