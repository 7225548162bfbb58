package order

import (
	"fmt"

	"pathlab/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Draft ──┬──> Ordered ──┬──> Completed
//	        │              │
//	        └──────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. The transition table lives in one
// place (allowedTransitions) and every status change is validated against
// it by TransitionTo.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status of a newly created order.
	Draft

	// Ordered indicates the order has been confirmed; a result may now be
	// recorded against it.
	Ordered

	// Completed indicates the order's result has been finalized.
	// Terminal.
	Completed

	// Cancelled indicates the order was withdrawn before completion.
	// Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Ordered:   "Ordered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support
// validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Ordered:   "Ordered",
		Completed: "Completed",
		Cancelled: "Cancelled",
	}
}

// allowedTransitions is the single authoritative transition table.
func allowedTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:     {Ordered, Cancelled},
		Ordered:   {Completed, Cancelled},
		Completed: {},
		Cancelled: {},
	}
}

// StatusFromString parses a display string ("Draft", "Ordered", ...) into a
// Status. Returns a validation error for anything outside the closed set.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks that the Status is one of the four workflow states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
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

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(allowedTransitions()[s]) == 0 && s.Validate() == nil
}

// CanTransitionTo reports whether the table permits moving to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range allowedTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates next against the closed set and the transition
// table, returning the new status on success.
//
// Returns:
//   - (next, nil) when the pair (s, next) appears in the table
//   - (0, error) when next is not a valid status or the pair is forbidden
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status transition",
			fmt.Errorf("cannot transition from %s to %s", s.String(), next.String()),
		)
	}

	return next, nil
}
