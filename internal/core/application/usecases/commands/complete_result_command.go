package commands

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/guard"
)

var ErrCompleteResultCommandIsNotConstructed = errors.New(
	"CompleteResultCommand must be created via NewCompleteResultCommand constructor",
)

// CompleteResultCommand represents a request to finalize a result and,
// with it, the owning order.
type CompleteResultCommand struct { //nolint:recvcheck //using for validation
	resultID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteResultCommand creates a command to complete a result.
func NewCompleteResultCommand(resultID kernel.UUID) (CompleteResultCommand, error) {
	if err := resultID.Validate(); err != nil {
		return CompleteResultCommand{}, err
	}

	return CompleteResultCommand{
		resultID: resultID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteResultCommand) Validate() error {
	return c.guard.Validate(ErrCompleteResultCommandIsNotConstructed)
}

// ResultID returns the identifier of the result to complete.
func (c CompleteResultCommand) ResultID() kernel.UUID {
	return c.resultID
}
