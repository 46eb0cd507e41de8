package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles a client withdrawing a pending order.
// Once a courier has claimed the order the withdrawal window is closed and
// the client gets a state conflict.
type CancelOrderCommandHandler struct {
	store OrderStore
}

// NewCancelOrderCommandHandler creates a handler for order withdrawal.
func NewCancelOrderCommandHandler(store OrderStore) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		store: store,
	}
}

// Handle processes the withdrawal and returns a snapshot of the cancelled
// order.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.Transition(ctx, cmd.OrderID(), order.Pending, func(o *order.Order) error {
		return o.Cancel(cmd.ClientName())
	})
}
