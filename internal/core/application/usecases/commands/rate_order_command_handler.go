package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// RateOrderCommandHandler handles the client's post-completion rating.
// An order is rated exactly once; a second rating is a state conflict and
// the original rating stands.
type RateOrderCommandHandler struct {
	store OrderStore
}

// NewRateOrderCommandHandler creates a handler for order rating.
func NewRateOrderCommandHandler(store OrderStore) RateOrderCommandHandler {
	return RateOrderCommandHandler{
		store: store,
	}
}

// Handle processes the rating and returns a snapshot of the rated order.
func (h RateOrderCommandHandler) Handle(ctx context.Context, cmd RateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.Transition(ctx, cmd.OrderID(), order.Completed, func(o *order.Order) error {
		return o.Rate(cmd.ClientName(), cmd.Rating(), cmd.Review())
	})
}
