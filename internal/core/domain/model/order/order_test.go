package order_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPrice(t *testing.T, amount float64) kernel.Price {
	t.Helper()
	p, err := kernel.NewPrice(amount)
	require.NoError(t, err)
	return p
}

func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), "Иван Петров", "ул. Ленина, д. 45", "мусор", mustPrice(t, 1500))
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	validPrice := mustPrice(t, 1500)

	t.Run("should create valid pending order", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Иван Петров", "ул. Ленина, д. 45", "мусор", validPrice)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, "Иван Петров", o.ClientName())
		assert.Equal(t, "ул. Ленина, д. 45", o.Address())
		assert.Equal(t, "мусор", o.Description())
		assert.True(t, o.Price().IsEqual(validPrice))
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, order.ProgressNone, o.Progress())
		assert.Empty(t, o.CourierName())
		assert.Nil(t, o.Rating())
		assert.Nil(t, o.Review())
		assert.False(t, o.CreatedAt().IsZero())
		assert.Nil(t, o.AcceptedAt())
		assert.Nil(t, o.CompletedAt())
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		o, err := order.NewOrder(invalidID, "Иван", "адрес", "мусор", validPrice)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with empty client name", func(t *testing.T) {
		o, err := order.NewOrder(validID, "", "адрес", "мусор", validPrice)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "client name")
	})

	t.Run("should fail with empty address", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Иван", "", "мусор", validPrice)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "address")
	})

	t.Run("should fail with empty description", func(t *testing.T) {
		o, err := order.NewOrder(validID, "Иван", "адрес", "", validPrice)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "description")
	})

	t.Run("should fail with zero value price", func(t *testing.T) {
		var invalidPrice kernel.Price

		o, err := order.NewOrder(validID, "Иван", "адрес", "мусор", invalidPrice)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "price must be created")
	})

	t.Run("should handle multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidPrice kernel.Price

		o, err := order.NewOrder(invalidID, "", "", "", invalidPrice)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "client name")
		assert.Contains(t, err.Error(), "address")
		assert.Contains(t, err.Error(), "description")
		assert.Contains(t, err.Error(), "price must be created")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail validation for nil order", func(t *testing.T) {
		var o *order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_Accept(t *testing.T) {
	t.Run("should accept pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept("Алексей")

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, "Алексей", o.CourierName())
		assert.Equal(t, order.ProgressEnRoute, o.Progress())
		assert.NotNil(t, o.AcceptedAt())
	})

	t.Run("should fail with empty courier name", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should forbid accepting own order", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Accept("Иван Петров")

		require.ErrorIs(t, err, errs.ErrActionForbidden)
		assert.Equal(t, order.Pending, o.Status())
		assert.Empty(t, o.CourierName())
	})

	t.Run("should conflict on already accepted order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		err := o.Accept("Борис")

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, "Алексей", o.CourierName())
	})

	t.Run("should conflict on cancelled order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Cancel("Иван Петров"))

		err := o.Accept("Алексей")

		require.ErrorIs(t, err, errs.ErrStateConflict)
	})
}

func TestOrder_StartWork(t *testing.T) {
	t.Run("should advance progress for the fulfilling courier", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		err := o.StartWork("Алексей")

		require.NoError(t, err)
		assert.Equal(t, order.ProgressWorking, o.Progress())
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should forbid a different courier", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		err := o.StartWork("Борис")

		require.ErrorIs(t, err, errs.ErrActionForbidden)
		assert.Equal(t, order.ProgressEnRoute, o.Progress())
	})

	t.Run("should conflict on pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.StartWork("Алексей"), errs.ErrStateConflict)
	})

	t.Run("should conflict when work already started", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))
		require.NoError(t, o.StartWork("Алексей"))

		require.ErrorIs(t, o.StartWork("Алексей"), errs.ErrStateConflict)
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("should complete accepted order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		err := o.Complete("Алексей")

		require.NoError(t, err)
		assert.Equal(t, order.Completed, o.Status())
		assert.NotNil(t, o.CompletedAt())
		assert.Equal(t, "Алексей", o.CourierName())
	})

	t.Run("should forbid completion by a different courier", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		err := o.Complete("Борис")

		require.ErrorIs(t, err, errs.ErrActionForbidden)
		assert.Equal(t, order.Accepted, o.Status())
	})

	t.Run("should conflict on pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.ErrorIs(t, o.Complete("Алексей"), errs.ErrStateConflict)
	})

	t.Run("should conflict on completed order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))
		require.NoError(t, o.Complete("Алексей"))

		require.ErrorIs(t, o.Complete("Алексей"), errs.ErrStateConflict)
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel pending order for its client", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel("Иван Петров")

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should forbid cancellation by another client", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.Cancel("Мария Сидорова")

		require.ErrorIs(t, err, errs.ErrActionForbidden)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should conflict once a courier holds the order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		require.ErrorIs(t, o.Cancel("Иван Петров"), errs.ErrStateConflict)
	})
}

func TestOrder_Expire(t *testing.T) {
	t.Run("should cancel pending order", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Expire())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should conflict on accepted order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))

		require.ErrorIs(t, o.Expire(), errs.ErrStateConflict)
	})
}

func TestOrder_Rate(t *testing.T) {
	completedOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))
		require.NoError(t, o.Complete("Алексей"))
		return o
	}

	t.Run("should rate completed order once", func(t *testing.T) {
		o := completedOrder(t)
		rating, _ := kernel.NewRating(5)

		err := o.Rate("Иван Петров", rating, "Отлично")

		require.NoError(t, err)
		require.NotNil(t, o.Rating())
		assert.Equal(t, 5, o.Rating().Value())
		require.NotNil(t, o.Review())
		assert.Equal(t, "Отлично", *o.Review())
		assert.Equal(t, order.Completed, o.Status())
	})

	t.Run("should record empty review as present", func(t *testing.T) {
		o := completedOrder(t)
		rating, _ := kernel.NewRating(4)

		require.NoError(t, o.Rate("Иван Петров", rating, ""))

		require.NotNil(t, o.Review())
		assert.Empty(t, *o.Review())
	})

	t.Run("should conflict on re-rating", func(t *testing.T) {
		o := completedOrder(t)
		rating, _ := kernel.NewRating(5)
		require.NoError(t, o.Rate("Иван Петров", rating, "Отлично"))

		err := o.Rate("Иван Петров", rating, "ещё раз")

		require.ErrorIs(t, err, errs.ErrStateConflict)
		assert.Equal(t, "Отлично", *o.Review())
	})

	t.Run("should forbid rating by another client", func(t *testing.T) {
		o := completedOrder(t)
		rating, _ := kernel.NewRating(5)

		err := o.Rate("Мария Сидорова", rating, "")

		require.ErrorIs(t, err, errs.ErrActionForbidden)
		assert.False(t, o.IsRated())
	})

	t.Run("should conflict on uncompleted order", func(t *testing.T) {
		o := newPendingOrder(t)
		rating, _ := kernel.NewRating(5)

		require.ErrorIs(t, o.Rate("Иван Петров", rating, ""), errs.ErrStateConflict)
	})

	t.Run("should reject out of range rating and leave order unrated", func(t *testing.T) {
		o := completedOrder(t)

		err := o.Rate("Иван Петров", kernel.Rating(7), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, o.IsRated())
		assert.Nil(t, o.Review())
	})
}

func TestOrder_Clone(t *testing.T) {
	t.Run("clone is detached from the original", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Accept("Алексей"))
		require.NoError(t, o.Complete("Алексей"))
		rating, _ := kernel.NewRating(5)
		require.NoError(t, o.Rate("Иван Петров", rating, "Отлично"))

		clone := o.Clone()

		assert.True(t, clone.IsEqual(o))
		assert.Equal(t, o.Status(), clone.Status())
		require.NotNil(t, clone.Rating())
		assert.NotSame(t, o.Rating(), clone.Rating())
		assert.NotSame(t, o.Review(), clone.Review())
		assert.NotSame(t, o.AcceptedAt(), clone.AcceptedAt())
		assert.NotSame(t, o.CompletedAt(), clone.CompletedAt())
	})
}
