package commands

import (
	"errors"
	"strings"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/pkg/errs"
	"pathlab/internal/pkg/guard"
)

var ErrCreateResultCommandIsNotConstructed = errors.New(
	"CreateResultCommand must be created via NewCreateResultCommand constructor",
)

// CreateResultCommand represents a request to record a result for an order.
// Notes are optional; the value is required.
type CreateResultCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	value   string
	notes   string

	guard guard.ConstructorGuard
}

// NewCreateResultCommand creates a command to record a result.
func NewCreateResultCommand(orderID kernel.UUID, value string, notes string) (CreateResultCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CreateResultCommand{}, err
	}

	if strings.TrimSpace(value) == "" {
		return CreateResultCommand{}, errs.NewValueIsRequiredError("result value")
	}

	return CreateResultCommand{
		orderID: orderID,
		value:   value,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateResultCommand) Validate() error {
	return c.guard.Validate(ErrCreateResultCommandIsNotConstructed)
}

// OrderID returns the identifier of the order the result belongs to.
func (c CreateResultCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Value returns the recorded result value.
func (c CreateResultCommand) Value() string {
	return c.value
}

// Notes returns the technician notes, possibly empty.
func (c CreateResultCommand) Notes() string {
	return c.notes
}
