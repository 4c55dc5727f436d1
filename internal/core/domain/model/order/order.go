package order

import (
	"errors"
	"time"

	"docflow/internal/core/domain/model/kernel"
	"docflow/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not
// created through the NewOrder or RestoreOrder factory functions.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root of the order lifecycle. An order belongs to
// exactly one user, carries a non-negative monetary total, and moves through
// the status state machine defined in this package.
//
// Invariants:
//   - Must have a valid unique identifier and owner
//   - Total amount is never negative (guaranteed by kernel.Money)
//   - Status changes follow the transition table; orders are never deleted
type Order struct {
	id        kernel.UUID
	userID    kernel.UUID
	total     kernel.Money
	status    Status
	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in Pending status.
// A zero total is allowed: the amount may be settled later at payment time.
func NewOrder(id, userID kernel.UUID, total kernel.Money) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
	); err != nil {
		return nil, err
	}

	o.total = total
	return o, nil
}

// RestoreOrder reconstructs an Order from persistence in an arbitrary
// valid status.
func RestoreOrder(
	id, userID kernel.UUID,
	total kernel.Money,
	status Status,
	createdAt, updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.total = total
	return o, nil
}

// Validate ensures the Order was created through a factory function.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Total returns the order's monetary total.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// ChangeStatus transitions the order to newStatus, enforcing the
// transition table. Illegal transitions return a conflict error and leave
// the order unchanged.
func (o *Order) ChangeStatus(newStatus Status) error {
	next, err := o.status.TransitionTo(newStatus)
	if err != nil {
		return err
	}

	o.status = next
	o.updatedAt = time.Now().UTC()
	return nil
}

// MarkPaid transitions the order to Paid. Called by the payment workflow
// when the processor confirms a successful payment.
func (o *Order) MarkPaid() error {
	return o.ChangeStatus(Paid)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
