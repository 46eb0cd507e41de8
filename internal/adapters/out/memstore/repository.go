package memstore

import (
	"context"
	"sync"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

// Repository is the in-memory implementation of ports.OrderRepository and the
// single authoritative owner of all order state.
//
// Orders are kept in insertion order, so every listing reflects submission
// order. All reads hand out deep clones: a snapshot a caller holds never
// changes under them, and nothing a caller does to a snapshot leaks back into
// the store. All mutations go through Transition, which performs the status
// check and the mutation under one write lock, making races (two couriers
// accepting the same order) resolve to exactly one winner.
type Repository struct {
	mu     sync.RWMutex
	orders []*order.Order
	index  map[kernel.UUID]int
}

var _ ports.OrderRepository = &Repository{}

// NewRepository creates an empty in-memory order repository.
func NewRepository() *Repository {
	return &Repository{
		index: make(map[kernel.UUID]int),
	}
}

// Add stores a new order. The order must be valid and its ID must be unused.
func (r *Repository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[aggregate.ID()]; ok {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			errs.NewStateConflictError("order", "already exists"))
	}

	r.index[aggregate.ID()] = len(r.orders)
	r.orders = append(r.orders, aggregate.Clone())
	return nil
}

// Get returns a snapshot of the order with the given ID.
func (r *Repository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	return r.orders[pos].Clone(), nil
}

// GetAll returns snapshots of all orders matching the predicate, in
// insertion order.
func (r *Repository) GetAll(_ context.Context, match order.Predicate) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*order.Order
	for _, o := range r.orders {
		if match(o) {
			result = append(result, o.Clone())
		}
	}

	return result, nil
}

// Transition atomically mutates the order with the given ID.
//
// The expected status is checked and the mutation applied under the write
// lock, so between the check and the swap no other writer can slip in.
// The mutation runs on a working copy which replaces the stored order only
// on success; a failed mutation leaves the store exactly as it was.
func (r *Repository) Transition(
	_ context.Context,
	id kernel.UUID,
	expected order.Status,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pos, ok := r.index[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}

	current := r.orders[pos]
	if current.Status() != expected {
		return nil, errs.NewStateConflictError("order", current.Status().String())
	}

	updated := current.Clone()
	if err := mutate(updated); err != nil {
		return nil, err
	}

	r.orders[pos] = updated
	return updated.Clone(), nil
}
