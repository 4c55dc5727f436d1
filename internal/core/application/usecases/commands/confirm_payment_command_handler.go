package commands

import (
	"context"
	"fmt"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/order"
	"docflow/internal/core/domain/model/payment"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
	"docflow/internal/pkg/errs"
)

// ConfirmPaymentResult reports the reconciled payment after a successful
// confirmation.
type ConfirmPaymentResult struct {
	PaymentID kernel.UUID
	Status    payment.Status
}

// ConfirmPaymentCommandHandler reconciles a local payment against the
// processor's authoritative status. The processor's reported status is
// mirrored onto the local payment even when it is not succeeded: the
// local record always reflects the processor's last known truth. A
// succeeded payment moves the owning order to paid in the same
// transaction. Confirming an already succeeded payment is a safe retry.
type ConfirmPaymentCommandHandler struct {
	uowFactory   PaymentUoWFactory
	processor    ports.PaymentProcessor
	accessPolicy services.AccessPolicy
	notifier     ports.Notifier
}

// NewConfirmPaymentCommandHandler creates a handler for confirmation operations.
func NewConfirmPaymentCommandHandler(
	uowFactory PaymentUoWFactory,
	processor ports.PaymentProcessor,
	accessPolicy services.AccessPolicy,
	notifier ports.Notifier,
) ConfirmPaymentCommandHandler {
	return ConfirmPaymentCommandHandler{
		uowFactory:   uowFactory,
		processor:    processor,
		accessPolicy: accessPolicy,
		notifier:     notifier,
	}
}

// Handle processes the confirmation command. The caller must own the
// order or hold the operator role. A non-succeeded processor status is
// persisted and then reported as a payment processing error.
func (h *ConfirmPaymentCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmPaymentCommand,
) (ConfirmPaymentResult, error) {
	if err := cmd.Validate(); err != nil {
		return ConfirmPaymentResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	owningOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	if err = h.accessPolicy.AuthorizeOwnerOr(cmd.Principal(), owningOrder.UserID(), user.RoleOperator); err != nil {
		return ConfirmPaymentResult{}, err
	}

	paymentRepo := uow.PaymentRepository()
	pmt, err := paymentRepo.GetByIntentID(ctx, cmd.IntentID())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}
	if !pmt.OrderID().IsEqual(cmd.OrderID()) {
		return ConfirmPaymentResult{}, errs.NewObjectNotFoundError("payment", cmd.IntentID())
	}

	intent, err := h.processor.RetrieveIntent(ctx, cmd.IntentID())
	if err != nil {
		return ConfirmPaymentResult{}, err
	}

	pmt.MirrorProcessorStatus(intent.Status)
	if err = paymentRepo.Update(ctx, pmt); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if pmt.IsSucceeded() && owningOrder.Status() != order.Paid {
		if err = owningOrder.MarkPaid(); err != nil {
			return ConfirmPaymentResult{}, err
		}
		if err = orderRepo.Update(ctx, owningOrder); err != nil {
			return ConfirmPaymentResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return ConfirmPaymentResult{}, err
	}

	if !pmt.IsSucceeded() {
		return ConfirmPaymentResult{}, errs.NewPaymentProcessingError(
			fmt.Sprintf("payment not succeeded, current status is %s", intent.Status))
	}

	h.notifier.NotifyPaymentSucceeded(ctx, owningOrder.ID(), pmt.ID())
	return ConfirmPaymentResult{PaymentID: pmt.ID(), Status: pmt.Status()}, nil
}
