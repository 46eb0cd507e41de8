// Package queries contains read-only operations over the order store.
// Implements the query side of the CQRS split: each query is a validated
// request object with a handler that projects store snapshots into
// role-scoped response types, so no domain aggregate leaks past the
// application layer.
package queries

import (
	"context"

	"dispatch/internal/core/domain/model/order"
)

// OrderReader is the read-side storage dependency of the query handlers.
// Listings are insertion-ordered snapshots, so every projection reflects
// submission order.
type OrderReader interface {
	GetAll(ctx context.Context, match order.Predicate) ([]*order.Order, error)
}
