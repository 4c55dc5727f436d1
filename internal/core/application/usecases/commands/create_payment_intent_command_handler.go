package commands

import (
	"context"
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/payment"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"
)

// CreatePaymentIntentResult reports the processor references the caller
// needs to complete the client-side payment flow.
type CreatePaymentIntentResult struct {
	PaymentID    kernel.UUID
	IntentID     string
	ClientSecret string
}

// CreatePaymentIntentCommandHandler opens a payment with the external
// processor. The processor is called before anything is persisted: a
// processor failure must not leave a local payment with no counterpart.
// At most one non-failed payment exists per order; a failed payment
// releases the slot for a retry. The storage layer backs the slot check
// with a uniqueness constraint.
type CreatePaymentIntentCommandHandler struct {
	uowFactory   PaymentUoWFactory
	processor    ports.PaymentProcessor
	accessPolicy services.AccessPolicy
}

// NewCreatePaymentIntentCommandHandler creates a handler for intent creation.
func NewCreatePaymentIntentCommandHandler(
	uowFactory PaymentUoWFactory,
	processor ports.PaymentProcessor,
	accessPolicy services.AccessPolicy,
) CreatePaymentIntentCommandHandler {
	return CreatePaymentIntentCommandHandler{
		uowFactory:   uowFactory,
		processor:    processor,
		accessPolicy: accessPolicy,
	}
}

// Handle processes the intent creation command. The caller must own the
// order or hold the operator role.
func (h *CreatePaymentIntentCommandHandler) Handle(
	ctx context.Context,
	cmd CreatePaymentIntentCommand,
) (CreatePaymentIntentResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owningOrder, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(cmd.Principal(), owningOrder.UserID(), user.RoleOperator); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	paymentRepo := uow.PaymentRepository()
	existing, err := paymentRepo.GetByOrderID(ctx, cmd.OrderID())
	switch {
	case err == nil:
		if existing.Status().OccupiesSlot() {
			return CreatePaymentIntentResult{}, errs.NewConflictError("a payment already exists for this order")
		}
	case errors.Is(err, errs.ErrObjectNotFound):
		// first payment attempt for this order
	default:
		return CreatePaymentIntentResult{}, err
	}

	intent, err := h.processor.CreateIntent(ctx, cmd.Amount(), cmd.Currency(), cmd.OrderID())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	newPayment, err := payment.NewPayment(cmd.PaymentID(), cmd.OrderID(), intent.ID, cmd.Amount(), cmd.Currency())
	if err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if err = paymentRepo.Add(ctx, newPayment); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatePaymentIntentResult{}, err
	}

	return CreatePaymentIntentResult{
		PaymentID:    newPayment.ID(),
		IntentID:     intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
