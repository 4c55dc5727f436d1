package document

import (
	"fmt"

	"docflow/internal/pkg/errs"
)

// Status tracks a document's place in the analysis pipeline.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Uploaded is the initial status after a successful upload.
	Uploaded

	// Processing indicates the document is part of a running analysis.
	Processing

	// Analyzed indicates the document was consumed by a completed analysis.
	Analyzed

	// Failed indicates analysis of the document failed.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Uploaded:   "uploaded",
		Processing: "processing",
		Analyzed:   "analyzed",
		Failed:     "failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Uploaded:   "uploaded",
		Processing: "processing",
		Analyzed:   "analyzed",
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
		fmt.Errorf("%q is not a valid document status", s),
	)
}

// Validate checks if the Status value is one of the enumerated valid statuses.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid document status", s),
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
