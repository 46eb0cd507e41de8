package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a pickup order in the marketplace. It is the aggregate root
// that manages the order lifecycle from submission through acceptance to
// completion and rating.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Client name, address and description are non-empty and immutable
//   - Price is non-negative and immutable
//   - Status transitions follow the state machine in Status
//   - Courier name is present if and only if the order is accepted or completed
//   - Rating and review may be present only on completed orders, set exactly once
//   - Can only be created through the NewOrder constructor
//
// Ownership rules live on the aggregate: the fulfilling courier is the only
// actor who may start or complete the work, and the owning client is the only
// actor who may cancel or rate. Violations surface as ActionForbiddenError,
// while wrong-state attempts surface as StateConflictError.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// clientName is the submitting client's display name
	clientName string

	// address is the pickup address
	address string

	// description is what needs to be picked up
	description string

	// price is the amount offered for the job
	price kernel.Price

	// status is the current state in the order lifecycle
	status Status

	// progress is the courier's sub-state while the order is accepted
	progress Progress

	// courierName is the accepting courier's name (empty until accepted)
	courierName string

	// rating is the client's score, set once after completion (nil if unrated)
	rating *kernel.Rating

	// review accompanies the rating; an empty string is a valid review,
	// distinct from the nil "no review" state
	review *string

	createdAt   time.Time
	acceptedAt  *time.Time
	completedAt *time.Time

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new pending Order with validation. This is the only way to
// create a valid Order.
//
// All text fields must be non-empty and the price must be constructed via
// kernel.NewPrice. The order starts in Pending status with no courier, no
// rating, and its creation time recorded.
//
// Example:
//
//	price, _ := kernel.NewPrice(1500)
//	o, err := order.NewOrder(kernel.NewUUID(), "Иван Петров", "ул. Ленина, д. 45", "мусор", price)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	clientName, address, description string,
	price kernel.Price,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		progress:      ProgressNone,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientName(clientName),
		o.setAddress(address),
		o.setDescription(description),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientName returns the submitting client's display name.
func (o *Order) ClientName() string {
	return o.clientName
}

// Address returns the pickup address.
func (o *Order) Address() string {
	return o.address
}

// Description returns what needs to be picked up.
func (o *Order) Description() string {
	return o.description
}

// Price returns the amount offered for the job.
func (o *Order) Price() kernel.Price {
	return o.price
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Progress returns the courier's sub-state of an accepted order.
func (o *Order) Progress() Progress {
	return o.progress
}

// CourierName returns the accepting courier's name, or "" if no courier
// has claimed the order.
func (o *Order) CourierName() string {
	return o.courierName
}

// Rating returns the client's rating, or nil if the order is unrated.
func (o *Order) Rating() *kernel.Rating {
	return o.rating
}

// Review returns the client's review text, or nil if the order is unrated.
func (o *Order) Review() *string {
	return o.review
}

// IsRated reports whether the client has rated the order.
func (o *Order) IsRated() bool {
	return o.rating != nil
}

// CreatedAt returns the submission time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns the acceptance time, or nil while pending.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// CompletedAt returns the completion time, or nil until completed.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Accept claims the order for the named courier and moves it to Accepted.
//
// Business rules:
//   - The courier name must be non-empty
//   - A courier may not accept their own submitted order
//   - The order must still be Pending (first writer wins; later attempts
//     get a state conflict)
//
// After a successful accept the order leaves the open pool, carries the
// courier's name, and the courier is en route.
func (o *Order) Accept(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courier name")
	}
	if courierName == o.clientName {
		return errs.NewActionForbiddenError("accept own order", courierName)
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.courierName = courierName
	o.progress = ProgressEnRoute
	o.acceptedAt = &now
	return nil
}

// StartWork records that the fulfilling courier has begun the work on site.
// Only the courier who accepted the order may report progress on it.
func (o *Order) StartWork(courierName string) error {
	if o.status != Accepted {
		return errs.NewStateConflictError("order", o.status.String())
	}
	if courierName != o.courierName {
		return errs.NewActionForbiddenError("start work", courierName)
	}

	newProgress, err := o.progress.StartWork()
	if err != nil {
		return err
	}

	o.progress = newProgress
	return nil
}

// Complete marks the order as fulfilled and moves it to the archive.
//
// The order must be Accepted, and only the courier named on the order may
// complete it; any other actor gets ActionForbiddenError.
func (o *Order) Complete(courierName string) error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}
	if courierName != o.courierName {
		return errs.NewActionForbiddenError("complete order", courierName)
	}

	now := time.Now().UTC()
	o.status = newStatus
	o.completedAt = &now
	return nil
}

// Cancel withdraws a still-pending order on behalf of its owning client.
// Once a courier holds the order, cancellation is a state conflict.
func (o *Order) Cancel(clientName string) error {
	if clientName != o.clientName {
		return errs.NewActionForbiddenError("cancel order", clientName)
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Expire withdraws a stale pending order on behalf of the system.
// Same transition as a client cancel, without the ownership check.
func (o *Order) Expire() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Rate attaches the owning client's rating and review to a completed order.
//
// Business rules:
//   - The order must be Completed (state conflict otherwise)
//   - Only the owning client may rate
//   - An order is rated exactly once; re-rating is a state conflict
//   - The review may be empty, which is recorded as an empty review rather
//     than no review
func (o *Order) Rate(clientName string, rating kernel.Rating, review string) error {
	if o.status != Completed {
		return errs.NewStateConflictError("order", o.status.String())
	}
	if clientName != o.clientName {
		return errs.NewActionForbiddenError("rate order", clientName)
	}
	if o.rating != nil {
		return errs.NewStateConflictError("order rating", "already set")
	}
	if err := rating.Validate(); err != nil {
		return err
	}

	o.rating = &rating
	o.review = &review
	return nil
}

// Clone returns a deep copy of the order. The store hands out clones so that
// no caller ever holds a live reference into the authoritative collection.
func (o *Order) Clone() *Order {
	clone := *o
	if o.rating != nil {
		r := *o.rating
		clone.rating = &r
	}
	if o.review != nil {
		v := *o.review
		clone.review = &v
	}
	if o.acceptedAt != nil {
		at := *o.acceptedAt
		clone.acceptedAt = &at
	}
	if o.completedAt != nil {
		at := *o.completedAt
		clone.completedAt = &at
	}
	return &clone
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("client name")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = address
	return nil
}

func (o *Order) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	o.description = description
	return nil
}

func (o *Order) setPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.price = price
	return nil
}
