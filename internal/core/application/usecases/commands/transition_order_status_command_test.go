package commands_test

import (
	"testing"

	"pathlab/internal/core/application/usecases/commands"
	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewTransitionOrderStatusCommand(id, "Ordered")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Ordered, cmd.Status())
}

func TestNewTransitionOrderStatusCommand_UnrecognizedStatus(t *testing.T) {
	for _, input := range []string{"", "draft", "Shipped", "Unknown"} {
		_, err := commands.NewTransitionOrderStatusCommand(kernel.NewUUID(), input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewTransitionOrderStatusCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewTransitionOrderStatusCommand(kernel.UUID{}, "Ordered")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
