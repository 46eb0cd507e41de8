package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler handles a courier claiming a pending order.
//
// The claim runs as a single atomic transition on the store: the pending
// check and the mutation happen under one lock, so of any number of
// concurrent claims exactly one succeeds.
type AcceptOrderCommandHandler struct {
	store OrderStore
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(store OrderStore) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		store: store,
	}
}

// Handle processes the claim and returns a snapshot of the accepted order.
// A lost race surfaces as StateConflictError carrying the order's actual
// status.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.Transition(ctx, cmd.OrderID(), order.Pending, func(o *order.Order) error {
		return o.Accept(cmd.CourierName())
	})
}
