package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a client's request to publish a new pickup
// order to the open pool.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand("Иван Петров", "ул. Ленина, д. 45", "мусор", 1500)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(store)
//	submitted, err := handler.Handle(ctx, cmd)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	clientName  string
	address     string
	description string
	price       kernel.Price

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to publish a new order.
// All text fields must be non-empty and the price must be valid, so an
// invalid submission never reaches the store.
func NewSubmitOrderCommand(clientName, address, description string, price float64) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setClientName(clientName),
		cmd.setAddress(address),
		cmd.setDescription(description),
		cmd.setPrice(price),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// ClientName returns the submitting client's display name.
func (c SubmitOrderCommand) ClientName() string {
	return c.clientName
}

// Address returns the pickup address.
func (c SubmitOrderCommand) Address() string {
	return c.address
}

// Description returns what needs to be picked up.
func (c SubmitOrderCommand) Description() string {
	return c.description
}

// Price returns the validated amount offered for the job.
func (c SubmitOrderCommand) Price() kernel.Price {
	return c.price
}

func (c *SubmitOrderCommand) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}

	c.clientName = clientName
	return nil
}

func (c *SubmitOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}

	c.address = address
	return nil
}

func (c *SubmitOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *SubmitOrderCommand) setPrice(price float64) error {
	p, err := kernel.NewPrice(price)
	if err != nil {
		return err
	}

	c.price = p
	return nil
}
