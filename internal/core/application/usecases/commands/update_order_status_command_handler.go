package commands

import (
	"context"

	"docflow/internal/core/domain/model/user"
	"docflow/internal/core/domain/services"
	"docflow/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles operator-driven order status
// changes. Only operators and admins may move orders between statuses;
// the transition table in the order aggregate rejects invalid moves.
type UpdateOrderStatusCommandHandler struct {
	uowFactory   OrderUoWFactory
	accessPolicy services.AccessPolicy
	notifier     ports.Notifier
}

// NewUpdateOrderStatusCommandHandler creates a handler for status update operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	accessPolicy services.AccessPolicy,
	notifier ports.Notifier,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory:   uowFactory,
		accessPolicy: accessPolicy,
		notifier:     notifier,
	}
}

// Handle processes the status update command. The status change and its
// persistence happen in one transaction; the notification is sent after
// commit and never fails the operation.
func (h *UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.accessPolicy.Authorize(cmd.Principal(), user.RoleOperator); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existingOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := existingOrder.Status()
	if err = existingOrder.ChangeStatus(cmd.NewStatus()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existingOrder); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.notifier.NotifyOrderStatusChanged(ctx, existingOrder.ID(), previous, existingOrder.Status())
	return nil
}
