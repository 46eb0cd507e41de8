package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrStartWorkCommandIsNotConstructed = errors.New(
	"StartWorkCommand must be created via NewStartWorkCommand constructor",
)

// StartWorkCommand represents the fulfilling courier reporting that they
// have arrived and begun the work on site.
type StartWorkCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	courierName string

	guard guard.ConstructorGuard
}

// NewStartWorkCommand creates a command to report the start of work.
func NewStartWorkCommand(orderID kernel.UUID, courierName string) (StartWorkCommand, error) {
	cmd := StartWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCourierName(courierName),
	); err != nil {
		return StartWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartWorkCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being worked on.
func (c StartWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierName returns the reporting courier's name.
func (c StartWorkCommand) CourierName() string {
	return c.courierName
}

func (c *StartWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *StartWorkCommand) setCourierName(courierName string) error {
	if courierName == "" {
		return errs.NewValueIsRequiredError("courierName")
	}

	c.courierName = courierName
	return nil
}
