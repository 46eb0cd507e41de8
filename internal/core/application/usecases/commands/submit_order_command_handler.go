package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Creates the order in pending status and publishes it to the open pool.
type SubmitOrderCommandHandler struct {
	store OrderStore
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(store OrderStore) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		store: store,
	}
}

// Handle processes the submission command and returns a snapshot of the
// newly published order.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		kernel.NewUUID(),
		cmd.ClientName(),
		cmd.Address(),
		cmd.Description(),
		cmd.Price(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.store.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	return newOrder, nil
}
