// Package commands contains business operations that modify order state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent pattern: a validated command object and a
// handler that routes the mutation through the order store's atomic
// check-and-set.
package commands

import (
	"dispatch/internal/core/ports"
)

// OrderStore is the write-side storage dependency of the command handlers.
// Every lifecycle transition goes through its Transition method, so two
// handlers racing over the same order serialize inside the store.
type OrderStore interface {
	ports.OrderRepository
}
