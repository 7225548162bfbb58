package commands

import (
	"errors"

	"pathlab/internal/pkg/guard"
)

var ErrCancelExpiredOrdersCommandIsNotConstructed = errors.New(
	"CancelExpiredOrdersCommand must be created via NewCancelExpiredOrdersCommand constructor",
)

// CancelExpiredOrdersCommand represents a request to cancel every Draft
// order whose order date has passed. Issued by the nightly expiry job.
type CancelExpiredOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCancelExpiredOrdersCommand creates a command to cancel expired drafts.
func NewCancelExpiredOrdersCommand() (CancelExpiredOrdersCommand, error) {
	return CancelExpiredOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelExpiredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelExpiredOrdersCommandIsNotConstructed)
}
