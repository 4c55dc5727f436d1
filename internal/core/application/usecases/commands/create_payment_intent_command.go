package commands

import (
	"errors"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/core/domain/model/user"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

var ErrCreatePaymentIntentCommandIsNotConstructed = errors.New(
	"CreatePaymentIntentCommand must be created via NewCreatePaymentIntentCommand constructor",
)

// CreatePaymentIntentCommand represents a request to open a payment with
// the external processor for an order.
type CreatePaymentIntentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	principal user.Principal
	amount    kernel.Money
	currency  string

	guard guard.ConstructorGuard
}

// NewCreatePaymentIntentCommand creates a command to open a payment intent.
// The amount must be positive and the currency a three-letter code.
func NewCreatePaymentIntentCommand(
	paymentID, orderID kernel.UUID,
	principal user.Principal,
	amount kernel.Money,
	currency string,
) (CreatePaymentIntentCommand, error) {
	cmd := CreatePaymentIntentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setPrincipal(principal),
		cmd.setAmount(amount),
		cmd.setCurrency(currency),
	); err != nil {
		return CreatePaymentIntentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePaymentIntentCommand) Validate() error {
	return c.guard.Validate(ErrCreatePaymentIntentCommandIsNotConstructed)
}

// PaymentID returns the identifier assigned to the new payment.
func (c CreatePaymentIntentCommand) PaymentID() kernel.UUID {
	return c.paymentID
}

// OrderID returns the identifier of the order being paid.
func (c CreatePaymentIntentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Principal returns the caller's identity.
func (c CreatePaymentIntentCommand) Principal() user.Principal {
	return c.principal
}

// Amount returns the payment amount.
func (c CreatePaymentIntentCommand) Amount() kernel.Money {
	return c.amount
}

// Currency returns the payment currency code.
func (c CreatePaymentIntentCommand) Currency() string {
	return c.currency
}

func (c *CreatePaymentIntentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}

	c.paymentID = paymentID
	return nil
}

func (c *CreatePaymentIntentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreatePaymentIntentCommand) setPrincipal(principal user.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	c.principal = principal
	return nil
}

func (c *CreatePaymentIntentCommand) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}

	c.amount = amount
	return nil
}

func (c *CreatePaymentIntentCommand) setCurrency(currency string) error {
	if len(currency) != 3 {
		return errs.NewValueIsInvalidError("currency")
	}

	c.currency = currency
	return nil
}
