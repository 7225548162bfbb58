package result

import (
	"fmt"

	"pathlab/internal/pkg/errs"
)

// Status represents the lifecycle state of a result: Draft, then Completed.
// Completed is terminal; there is no way back to Draft.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status; value and notes are still editable.
	Draft

	// Completed indicates the result was finalized. Terminal.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Completed: "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Completed: "Completed",
	}
}

// Validate checks that the Status is Draft or Completed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid result status", s))
	}
	return nil
}

// String returns the display name of the status, or "Unknown" for invalid
// values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Complete transitions the status to Completed. Legal only from Draft; a
// second completion attempt fails rather than succeeding idempotently.
func (s Status) Complete() (Status, error) {
	if s != Draft {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}
