package order

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with an explicit transition table: any transition not listed is
// rejected with a conflict error.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	Pending

	// Processing indicates an operator has started working the order.
	Processing

	// Completed indicates the order has been fulfilled. Terminal.
	Completed

	// Cancelled indicates the order was abandoned. Terminal.
	// Cancellation is a status, not a removal: cancelled orders stay
	// in the store.
	Cancelled

	// Paid indicates a successful payment was confirmed for the order.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Paid:       "paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Processing: "processing",
		Completed:  "completed",
		Cancelled:  "cancelled",
		Paid:       "paid",
	}
}

// transitions is the set of allowed status changes. Absent keys are
// terminal states.
func transitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:    {Processing, Paid, Cancelled},
		Processing: {Completed, Paid, Cancelled},
		Paid:       {Completed, Cancelled},
	}
}

// StatusFromString parses a status name as supplied by callers.
// Unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks if the Status value is one of the enumerated valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
// Implements fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionTo reports whether the transition table allows moving from
// this status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs a status transition.
// Returns a conflict error when the transition table forbids the move.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, errs.NewConflictError(
			fmt.Sprintf("order status cannot change from %s to %s", s, next),
		)
	}
	return next, nil
}
