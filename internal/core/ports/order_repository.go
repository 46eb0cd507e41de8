package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// The store is the sole owner of order state: callers only ever see
// snapshots, and every mutation goes through Transition so concurrent
// writers serialize on a single check-and-set.
type OrderRepository interface {
	// Add stores a new order aggregate.
	// The order must be valid and its ID must not already exist.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves a snapshot of an order by its unique identifier.
	// Returns ObjectNotFoundError when no order has that ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves snapshots of all orders matching the predicate,
	// in insertion order.
	GetAll(ctx context.Context, match order.Predicate) ([]*order.Order, error)

	// Transition atomically mutates the order with the given ID.
	//
	// The order must currently be in the expected status, otherwise
	// Transition fails with StateConflictError without calling mutate.
	// The mutate function is applied to a working copy; the copy replaces
	// the stored order only when mutate succeeds, so a failed mutation
	// leaves the store untouched. Returns a snapshot of the updated order.
	Transition(ctx context.Context, id kernel.UUID, expected order.Status, mutate func(*order.Order) error) (*order.Order, error)
}
