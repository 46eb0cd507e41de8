package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// CompleteOrderCommandHandler handles order completion. On success the
// order moves to the archive and becomes eligible for rating.
type CompleteOrderCommandHandler struct {
	store OrderStore
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(store OrderStore) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		store: store,
	}
}

// Handle processes the completion and returns a snapshot of the completed
// order. Completing an order that is not accepted is a state conflict;
// completing someone else's order is forbidden.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.Transition(ctx, cmd.OrderID(), order.Accepted, func(o *order.Order) error {
		return o.Complete(cmd.CourierName())
	})
}
