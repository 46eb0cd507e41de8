package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions so orders only
// move forward through the marketplace workflow.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Completed
//	          │
//	          └──> Cancelled
//
// Completed and Cancelled are terminal; no transition leaves them.
// Failed transitions report a state conflict: the order has already been
// advanced past the expected state, usually by another actor.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first submitted.
	// Pending orders sit in the open pool, visible to every courier.
	Pending

	// Accepted indicates a courier has claimed the order and holds it
	// until completion.
	Accepted

	// Completed indicates the courier has fulfilled the order.
	// Terminal; the only state in which a rating may be attached.
	Completed

	// Cancelled indicates the order was withdrawn while still pending,
	// either by the client or by expiry. Terminal and never rated.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// Validate checks the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the lowercase name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transition may leave this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// Accept transitions the status to Accepted.
// Only Pending orders can be accepted; anything else is a state conflict,
// which is how the loser of an accept race learns the order is taken.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("order", s.String())
	}
	return Accepted, nil
}

// Complete transitions the status to Completed.
// Only Accepted orders can be completed.
func (s Status) Complete() (Status, error) {
	if s != Accepted {
		return 0, errs.NewStateConflictError("order", s.String())
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
// Only Pending orders can be cancelled; once a courier holds the order the
// withdrawal window is closed.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewStateConflictError("order", s.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveCourier validates the consistency between order status and
// courier assignment: a courier is present if and only if the order is
// Accepted or Completed.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s != Accepted && s != Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()))
	}

	if !courier && (s == Accepted || s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()))
	}

	return nil
}
