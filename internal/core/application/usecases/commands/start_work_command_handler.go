package commands

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// StartWorkCommandHandler handles the courier's on-site progress report.
// The order must be accepted and the reporting courier must be the one
// holding it.
type StartWorkCommandHandler struct {
	store OrderStore
}

// NewStartWorkCommandHandler creates a handler for start-of-work reports.
func NewStartWorkCommandHandler(store OrderStore) StartWorkCommandHandler {
	return StartWorkCommandHandler{
		store: store,
	}
}

// Handle processes the progress report and returns a snapshot of the order.
func (h StartWorkCommandHandler) Handle(ctx context.Context, cmd StartWorkCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.store.Transition(ctx, cmd.OrderID(), order.Accepted, func(o *order.Order) error {
		return o.StartWork(cmd.CourierName())
	})
}
