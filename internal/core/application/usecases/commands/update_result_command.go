package commands

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/guard"
)

var ErrUpdateResultCommandIsNotConstructed = errors.New(
	"UpdateResultCommand must be created via NewUpdateResultCommand constructor",
)

// UpdateResultCommand represents a partial update of a draft result. Nil
// fields are left untouched. A supplied value must be non-blank; supplied
// notes may be blank (clearing them).
type UpdateResultCommand struct { //nolint:recvcheck //using for validation
	resultID kernel.UUID
	value    *string
	notes    *string

	guard guard.ConstructorGuard
}

// NewUpdateResultCommand creates a partial-update command for the given
// result. Either of value and notes may be nil to leave that field
// unchanged.
func NewUpdateResultCommand(resultID kernel.UUID, value *string, notes *string) (UpdateResultCommand, error) {
	if err := resultID.Validate(); err != nil {
		return UpdateResultCommand{}, err
	}

	return UpdateResultCommand{
		resultID: resultID,
		value:    value,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateResultCommand) Validate() error {
	return c.guard.Validate(ErrUpdateResultCommandIsNotConstructed)
}

// ResultID returns the identifier of the result to update.
func (c UpdateResultCommand) ResultID() kernel.UUID {
	return c.resultID
}

// Value returns the new result value, or nil to keep the current one.
func (c UpdateResultCommand) Value() *string {
	return c.value
}

// Notes returns the new technician notes, or nil to keep the current ones.
func (c UpdateResultCommand) Notes() *string {
	return c.notes
}
