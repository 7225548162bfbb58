package commands

import (
	"errors"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/guard"
)

var ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
	"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
)

// TransitionOrderStatusCommand represents a request to move an order to a
// new workflow status. The target status arrives as a display string
// ("Ordered", "Completed", "Cancelled") and is parsed here; whether the
// transition is legal from the order's current status is decided by the
// aggregate.
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to transition an order.
func NewTransitionOrderStatusCommand(orderID kernel.UUID, status string) (TransitionOrderStatusCommand, error) {
	if err := orderID.Validate(); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	parsed, err := order.StatusFromString(status)
	if err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return TransitionOrderStatusCommand{
		orderID: orderID,
		status:  parsed,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Status returns the target workflow status.
func (c TransitionOrderStatusCommand) Status() order.Status {
	return c.status
}
