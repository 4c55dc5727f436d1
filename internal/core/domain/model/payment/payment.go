package payment

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/errs"
	"docflow/internal/pkg/guard"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through the NewPayment or RestorePayment factory functions.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment or RestorePayment")

// Payment records one payment attempt for an order.
//
// Invariants:
//   - Bound to exactly one order; at most one payment occupies an order's
//     slot (unique index on order id at the persistence layer)
//   - Amount is strictly positive
//   - intentID is the processor's reference and is only set after the
//     processor accepted the intent; a Payment never exists without a
//     processor counterpart
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	intentID  string
	amount    kernel.Money
	currency  string
	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewPayment creates a Pending payment carrying the processor's intent
// reference. Call only after the processor accepted the intent.
func NewPayment(id, orderID kernel.UUID, intentID string, amount kernel.Money, currency string) (*Payment, error) {
	now := time.Now().UTC()
	p := &Payment{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setIntentID(intentID),
		p.setAmount(amount),
		p.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id, orderID kernel.UUID,
	intentID string,
	amount kernel.Money,
	currency string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Payment, error) {
	p := &Payment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setOrderID(orderID),
		p.setIntentID(intentID),
		p.setAmount(amount),
		p.setCurrency(currency),
		p.setStatus(status),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Payment was created through a factory function.
func (p *Payment) Validate() error {
	if p == nil {
		return ErrPaymentIsNotConstructed
	}
	return p.guard.Validate(ErrPaymentIsNotConstructed)
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// OrderID returns the identifier of the owning order.
func (p *Payment) OrderID() kernel.UUID {
	return p.orderID
}

// IntentID returns the processor's intent reference.
func (p *Payment) IntentID() string {
	return p.intentID
}

// Amount returns the payment amount.
func (p *Payment) Amount() kernel.Money {
	return p.amount
}

// Currency returns the lowercase ISO currency code.
func (p *Payment) Currency() string {
	return p.currency
}

// Status returns the local payment status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns the intent creation timestamp.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

// UpdatedAt returns the last reconciliation timestamp.
func (p *Payment) UpdatedAt() time.Time {
	return p.updatedAt
}

// MirrorProcessorStatus overwrites the local status with the processor's
// reported one. The local record must always reflect the processor's last
// known truth, including non-success outcomes.
func (p *Payment) MirrorProcessorStatus(processorStatus string) {
	p.status = StatusFromProcessor(processorStatus)
	p.updatedAt = time.Now().UTC()
}

// IsSucceeded reports whether the payment was confirmed.
func (p *Payment) IsSucceeded() bool {
	return p.status == Succeeded
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}

func (p *Payment) setIntentID(intentID string) error {
	if intentID == "" {
		return errs.NewValueIsRequiredError("intent reference")
	}
	p.intentID = intentID
	return nil
}

func (p *Payment) setAmount(amount kernel.Money) error {
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("payment amount", amount.MinorUnits(), 1, "unbounded")
	}
	p.amount = amount
	return nil
}

func (p *Payment) setCurrency(currency string) error {
	if currency == "" {
		return errs.NewValueIsRequiredError("currency")
	}
	if len(currency) != 3 {
		return errs.NewValueIsInvalidError("currency")
	}
	p.currency = currency
	return nil
}

func (p *Payment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	p.status = status
	return nil
}
