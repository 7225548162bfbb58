package order_test

import (
	"testing"
	"time"

	"pathlab/internal/core/domain/model/kernel"
	"pathlab/internal/core/domain/model/order"
	"pathlab/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func today() time.Time {
	return order.DayOf(time.Now())
}

func newDraftOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", kernel.NewUUID(), today())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create a Draft order for today", func(t *testing.T) {
		id := kernel.NewUUID()
		testID := kernel.NewUUID()

		o, err := order.NewOrder(id, "LTO-1001", "John Smith", "555-0100", testID, today())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, "LTO-1001", o.Code())
		assert.Equal(t, "John Smith", o.PatientName())
		assert.Equal(t, "555-0100", o.PatientPhone())
		assert.True(t, o.TestID().IsEqual(testID))
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, order.Unknown, o.LoadedStatus())
	})

	t.Run("should accept a future order date and truncate it to the day", func(t *testing.T) {
		nextWeek := time.Now().AddDate(0, 0, 7)

		o, err := order.NewOrder(kernel.NewUUID(), "LTO-1002", "Jane Roe", "555-0101", kernel.NewUUID(), nextWeek)

		require.NoError(t, err)
		assert.Equal(t, order.DayOf(nextWeek), o.OrderDate())
		assert.Equal(t, 0, o.OrderDate().Hour())
	})

	t.Run("should reject an order date before today", func(t *testing.T) {
		yesterday := time.Now().AddDate(0, 0, -1)

		_, err := order.NewOrder(kernel.NewUUID(), "LTO-1003", "Jane Roe", "555-0101", kernel.NewUUID(), yesterday)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "order date")
	})

	t.Run("should reject blank required fields", func(t *testing.T) {
		testCases := []struct {
			name         string
			code         string
			patientName  string
			patientPhone string
		}{
			{"blank code", " ", "John Smith", "555-0100"},
			{"blank patient name", "LTO-1001", "", "555-0100"},
			{"blank patient phone", "LTO-1001", "John Smith", "  "},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.NewOrder(
					kernel.NewUUID(), tc.code, tc.patientName, tc.patientPhone, kernel.NewUUID(), today())

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsRequired)
			})
		}
	})

	t.Run("should reject invalid test reference", func(t *testing.T) {
		var testID kernel.UUID

		_, err := order.NewOrder(kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", testID, today())

		require.Error(t, err)
	})

	t.Run("should reject zero order date", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", kernel.NewUUID(), time.Time{})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore any valid status and remember it", func(t *testing.T) {
		for _, status := range []order.Status{order.Draft, order.Ordered, order.Completed, order.Cancelled} {
			t.Run(status.String(), func(t *testing.T) {
				o, err := order.RestoreOrder(
					kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", kernel.NewUUID(), today(), status)

				require.NoError(t, err)
				assert.Equal(t, status, o.Status())
				assert.Equal(t, status, o.LoadedStatus())
			})
		}
	})

	t.Run("should not re-apply the order date floor", func(t *testing.T) {
		lastMonth := time.Now().AddDate(0, -1, 0)

		o, err := order.RestoreOrder(
			kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", kernel.NewUUID(), lastMonth, order.Completed)

		require.NoError(t, err)
		assert.Equal(t, order.DayOf(lastMonth), o.OrderDate())
	})

	t.Run("should reject the Unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), "LTO-1001", "John Smith", "555-0100", kernel.NewUUID(), today(), order.Unknown)

		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject struct not built by constructor", func(t *testing.T) {
		o := &order.Order{}

		err := o.Validate()

		require.Error(t, err)
		assert.Equal(t, order.ErrOrderIsNotConstructed, err)
	})

	t.Run("should reject nil receiver", func(t *testing.T) {
		var o *order.Order
		require.Error(t, o.Validate())
	})
}

func TestOrder_TransitionTo(t *testing.T) {
	t.Run("Draft to Ordered succeeds", func(t *testing.T) {
		o := newDraftOrder(t)

		require.NoError(t, o.TransitionTo(order.Ordered))
		assert.Equal(t, order.Ordered, o.Status())
	})

	t.Run("Draft to Completed is forbidden", func(t *testing.T) {
		o := newDraftOrder(t)

		err := o.TransitionTo(order.Completed)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("terminal statuses admit no transition", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.Cancel())

		for _, next := range []order.Status{order.Draft, order.Ordered, order.Completed} {
			require.Error(t, o.TransitionTo(next))
		}
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("succeeds from Ordered", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.TransitionTo(order.Ordered))

		require.NoError(t, o.Complete())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("fails from Draft", func(t *testing.T) {
		o := newDraftOrder(t)
		require.Error(t, o.Complete())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("succeeds from Draft and Ordered", func(t *testing.T) {
		fromDraft := newDraftOrder(t)
		require.NoError(t, fromDraft.Cancel())

		fromOrdered := newDraftOrder(t)
		require.NoError(t, fromOrdered.TransitionTo(order.Ordered))
		require.NoError(t, fromOrdered.Cancel())
	})

	t.Run("fails once completed", func(t *testing.T) {
		o := newDraftOrder(t)
		require.NoError(t, o.TransitionTo(order.Ordered))
		require.NoError(t, o.Complete())

		require.Error(t, o.Cancel())
	})
}

func TestOrder_CanCreateResult(t *testing.T) {
	o := newDraftOrder(t)
	assert.False(t, o.CanCreateResult())

	require.NoError(t, o.TransitionTo(order.Ordered))
	assert.True(t, o.CanCreateResult())

	require.NoError(t, o.Complete())
	assert.False(t, o.CanCreateResult())
}
