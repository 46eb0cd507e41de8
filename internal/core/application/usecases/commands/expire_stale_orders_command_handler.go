package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
)

// ExpireStaleOrdersCommandHandler sweeps the open pool and withdraws
// pending orders that have waited longer than the command's maximum age.
//
// The sweep races against couriers: an order may be accepted between the
// listing and the transition. Those orders are simply skipped; the courier
// won.
type ExpireStaleOrdersCommandHandler struct {
	store OrderStore
}

// NewExpireStaleOrdersCommandHandler creates a handler for the expiry sweep.
func NewExpireStaleOrdersCommandHandler(store OrderStore) ExpireStaleOrdersCommandHandler {
	return ExpireStaleOrdersCommandHandler{
		store: store,
	}
}

// Handle runs one sweep and returns how many orders were expired.
func (h ExpireStaleOrdersCommandHandler) Handle(ctx context.Context, cmd ExpireStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.MaxAge())
	stale, err := h.store.GetAll(ctx, order.StaleOpen(cutoff))
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, o := range stale {
		_, err := h.store.Transition(ctx, o.ID(), order.Pending, func(o *order.Order) error {
			return o.Expire()
		})
		if err != nil {
			if errors.Is(err, errs.ErrStateConflict) || errors.Is(err, errs.ErrObjectNotFound) {
				continue
			}
			return expired, err
		}
		expired++
	}

	return expired, nil
}
