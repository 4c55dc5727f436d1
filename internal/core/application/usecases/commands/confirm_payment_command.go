package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrConfirmPaymentCommandIsNotConstructed = errors.New(
	"ConfirmPaymentCommand must be created via NewConfirmPaymentCommand constructor",
)

// ConfirmPaymentCommand represents a request to reconcile a payment
// against the processor's authoritative status.
type ConfirmPaymentCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	intentID  string
	principal user.Principal

	guard guard.ConstructorGuard
}

// NewConfirmPaymentCommand creates a command to confirm a payment intent.
func NewConfirmPaymentCommand(
	orderID kernel.UUID,
	intentID string,
	principal user.Principal,
) (ConfirmPaymentCommand, error) {
	cmd := ConfirmPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setIntentID(intentID),
		cmd.setPrincipal(principal),
	); err != nil {
		return ConfirmPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPaymentCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPaymentCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c ConfirmPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IntentID returns the processor intent reference to confirm.
func (c ConfirmPaymentCommand) IntentID() string {
	return c.intentID
}

// Principal returns the caller's identity.
func (c ConfirmPaymentCommand) Principal() user.Principal {
	return c.principal
}

func (c *ConfirmPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ConfirmPaymentCommand) setIntentID(intentID string) error {
	if intentID == "" {
		return errs.NewValueIsRequiredError("payment intent id")
	}

	c.intentID = intentID
	return nil
}

func (c *ConfirmPaymentCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}
