package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept defined statuses", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Accepted, order.Completed, order.Cancelled} {
			assert.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject unknown and out of range values", func(t *testing.T) {
		assert.ErrorIs(t, order.Unknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, order.Status(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatus_String(t *testing.T) {
	tests := map[order.Status]string{
		order.Unknown:    "unknown",
		order.Pending:    "pending",
		order.Accepted:   "accepted",
		order.Completed:  "completed",
		order.Cancelled:  "cancelled",
		order.Status(42): "unknown",
	}

	for status, want := range tests {
		assert.Equal(t, want, status.String())
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should transition from pending", func(t *testing.T) {
		next, err := order.Pending.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("should conflict from any other status", func(t *testing.T) {
		for _, s := range []order.Status{order.Accepted, order.Completed, order.Cancelled} {
			_, err := s.Accept()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
			assert.Contains(t, err.Error(), s.String())
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should transition from accepted", func(t *testing.T) {
		next, err := order.Accepted.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("should conflict from any other status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Completed, order.Cancelled} {
			_, err := s.Complete()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("should transition from pending", func(t *testing.T) {
		next, err := order.Pending.Cancel()

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, next)
	})

	t.Run("should conflict from any other status", func(t *testing.T) {
		for _, s := range []order.Status{order.Accepted, order.Completed, order.Cancelled} {
			_, err := s.Cancel()
			require.ErrorIs(t, err, errs.ErrStateConflict, s.String())
		}
	})
}

func TestStatus_ValidateCanHaveCourier(t *testing.T) {
	t.Run("courier only on accepted and completed", func(t *testing.T) {
		assert.NoError(t, order.Accepted.ValidateCanHaveCourier(true))
		assert.NoError(t, order.Completed.ValidateCanHaveCourier(true))
		assert.ErrorIs(t, order.Pending.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, order.Cancelled.ValidateCanHaveCourier(true), errs.ErrValueIsInvalid)
	})

	t.Run("no courier only outside accepted and completed", func(t *testing.T) {
		assert.NoError(t, order.Pending.ValidateCanHaveCourier(false))
		assert.NoError(t, order.Cancelled.ValidateCanHaveCourier(false))
		assert.ErrorIs(t, order.Accepted.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, order.Completed.ValidateCanHaveCourier(false), errs.ErrValueIsInvalid)
	})
}

func TestProgress_String(t *testing.T) {
	assert.Equal(t, "none", order.ProgressNone.String())
	assert.Equal(t, "en_route", order.ProgressEnRoute.String())
	assert.Equal(t, "working", order.ProgressWorking.String())
}

func TestProgress_StartWork(t *testing.T) {
	t.Run("should advance from en route", func(t *testing.T) {
		next, err := order.ProgressEnRoute.StartWork()

		require.NoError(t, err)
		assert.Equal(t, order.ProgressWorking, next)
	})

	t.Run("should conflict otherwise", func(t *testing.T) {
		_, err := order.ProgressNone.StartWork()
		require.ErrorIs(t, err, errs.ErrStateConflict)

		_, err = order.ProgressWorking.StartWork()
		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}
