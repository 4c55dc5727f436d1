package analysis

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status represents the lifecycle state of an analysis job.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending indicates a job submitted but not yet picked up.
	Pending

	// InProgress indicates a running job.
	InProgress

	// Completed indicates a finished job with a result payload.
	Completed

	// Failed indicates a job that did not finish. Failed jobs may be
	// re-triggered, which resets them to InProgress.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Failed:     "failed",
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
		fmt.Errorf("%q is not a valid analysis status", s),
	)
}

// Validate checks if the Status value is one of the enumerated valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid analysis status", s),
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

// IsActive reports whether a job in this status occupies the order's
// single analysis slot (a new trigger must be rejected).
func (s Status) IsActive() bool {
	return s == Pending || s == InProgress
}
