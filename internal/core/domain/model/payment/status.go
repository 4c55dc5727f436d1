package payment

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents the local view of a payment's state.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending indicates an intent was created but not yet confirmed.
	Pending

	// Succeeded indicates the processor confirmed the payment.
	Succeeded

	// Failed indicates the processor rejected or cancelled the payment.
	// A failed payment releases the order's payment slot for a retry.
	Failed

	// Refunded indicates the captured funds were returned.
	Refunded
)

// Processor status strings as reported by the payment processor's API.
const (
	ProcessorStatusSucceeded = "succeeded"
	ProcessorStatusCanceled  = "canceled"
	ProcessorStatusRefunded  = "refunded"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Succeeded: "succeeded",
		Failed:    "failed",
		Refunded:  "refunded",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Succeeded: "succeeded",
		Failed:    "failed",
		Refunded:  "refunded",
	}
}

// StatusFromProcessor maps a processor-reported status string onto the
// local enumeration. Intermediate processor states (requires_action,
// processing, and the like) remain Pending locally; only terminal
// processor outcomes move the local status.
func StatusFromProcessor(s string) Status {
	switch s {
	case ProcessorStatusSucceeded:
		return Succeeded
	case ProcessorStatusCanceled, "payment_failed":
		return Failed
	case ProcessorStatusRefunded:
		return Refunded
	default:
		return Pending
	}
}

// StatusFromString parses a persisted status name. Unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

// Validate checks if the Status value is one of the enumerated valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

// String returns the persisted name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// OccupiesSlot reports whether a payment in this status holds the order's
// single payment slot. Failed payments release the slot so a fresh intent
// can replace them.
func (s Status) OccupiesSlot() bool {
	return s == Pending || s == Succeeded || s == Refunded
}
