package commands_test

import (
	"context"
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) GetAll(ctx context.Context, match order.Predicate) ([]*order.Order, error) {
	args := m.Called(ctx, match)
	if result := args.Get(0); result != nil {
		return result.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderStore) Transition(
	ctx context.Context,
	id kernel.UUID,
	expected order.Status,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	args := m.Called(ctx, id, expected, mutate)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestSubmitOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitOrderCommand("Иван Петров", "ул. Ленина, д. 45", "мусор", 1500)

	store := new(MockOrderStore)
	store.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewSubmitOrderCommandHandler(store)
	submitted, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, submitted)
	assert.Equal(t, order.Pending, submitted.Status())
	assert.Equal(t, "Иван Петров", submitted.ClientName())
	store.AssertExpectations(t)
}

func TestSubmitOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SubmitOrderCommand{} // not constructed properly

	store := new(MockOrderStore)
	h := commands.NewSubmitOrderCommandHandler(store)

	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrSubmitOrderCommandIsNotConstructed)
	store.AssertNotCalled(t, "Add")
}

func TestSubmitOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSubmitOrderCommand("Иван Петров", "ул. Ленина, д. 45", "мусор", 1500)

	store := new(MockOrderStore)
	store.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errors.New("add error")).Once()

	h := commands.NewSubmitOrderCommandHandler(store)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	store.AssertExpectations(t)
}
