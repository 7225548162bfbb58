package commands

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/guard"
)

var ErrUpdateTestCommandIsNotConstructed = errors.New(
	"UpdateTestCommand must be created via NewUpdateTestCommand constructor",
)

// UpdateTestCommand represents a partial update of a catalog test. Nil
// fields are left untouched; supplied fields are validated by the aggregate
// (blank name/range rejected, price re-checked for positivity).
type UpdateTestCommand struct { //nolint:recvcheck //using for validation
	testID      kernel.UUID
	name        *string
	price       *kernel.Price
	normalRange *string
	active      *bool

	guard guard.ConstructorGuard
}

// NewUpdateTestCommand creates a partial-update command for the given test.
// Any of name, price, normalRange, and active may be nil to leave that
// field unchanged.
func NewUpdateTestCommand(
	testID kernel.UUID,
	name *string,
	price *kernel.Price,
	normalRange *string,
	active *bool,
) (UpdateTestCommand, error) {
	if err := testID.Validate(); err != nil {
		return UpdateTestCommand{}, err
	}

	return UpdateTestCommand{
		testID:      testID,
		name:        name,
		price:       price,
		normalRange: normalRange,
		active:      active,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTestCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTestCommandIsNotConstructed)
}

// TestID returns the identifier of the test to update.
func (c UpdateTestCommand) TestID() kernel.UUID {
	return c.testID
}

// Name returns the new display name, or nil to keep the current one.
func (c UpdateTestCommand) Name() *string {
	return c.name
}

// Price returns the new price, or nil to keep the current one.
func (c UpdateTestCommand) Price() *kernel.Price {
	return c.price
}

// NormalRange returns the new reference range, or nil to keep the current one.
func (c UpdateTestCommand) NormalRange() *string {
	return c.normalRange
}

// Active returns the new active flag, or nil to keep the current one.
func (c UpdateTestCommand) Active() *bool {
	return c.active
}
