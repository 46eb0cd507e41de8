// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order moves pending → accepted → completed, or pending → cancelled;
// completed and cancelled are terminal. All transitions are expressed as
// aggregate methods that enforce state guards (StateConflictError when the
// order has already advanced) and ownership guards (ActionForbiddenError when
// the actor is not the order's client or courier). Progress is the courier's
// sub-state of an accepted order, mirroring the en-route → working flow.
//
// The package also defines the visibility projections (open pool, courier
// held set, client active set, archive, public reviews) as predicates the
// store evaluates on demand.
package order
