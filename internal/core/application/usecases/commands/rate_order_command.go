package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrRateOrderCommandIsNotConstructed = errors.New(
	"RateOrderCommand must be created via NewRateOrderCommand constructor",
)

// RateOrderCommand represents the owning client scoring a completed order.
// The rating is validated at construction, so an out-of-range score is
// rejected before the store is touched. The review may be empty; an empty
// review is still recorded as a review.
type RateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientName string
	rating     kernel.Rating
	review     string

	guard guard.ConstructorGuard
}

// NewRateOrderCommand creates a command to rate a completed order.
func NewRateOrderCommand(orderID kernel.UUID, clientName string, rating int, review string) (RateOrderCommand, error) {
	cmd := RateOrderCommand{
		review: review,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientName(clientName),
		cmd.setRating(rating),
	); err != nil {
		return RateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RateOrderCommand) Validate() error {
	return c.guard.Validate(ErrRateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being rated.
func (c RateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientName returns the rating client's name.
func (c RateOrderCommand) ClientName() string {
	return c.clientName
}

// Rating returns the validated score.
func (c RateOrderCommand) Rating() kernel.Rating {
	return c.rating
}

// Review returns the review text, possibly empty.
func (c RateOrderCommand) Review() string {
	return c.review
}

func (c *RateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RateOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}

	c.clientName = clientName
	return nil
}

func (c *RateOrderCommand) setRating(rating int) error {
	r, err := kernel.NewRating(rating)
	if err != nil {
		return err
	}

	c.rating = r
	return nil
}
