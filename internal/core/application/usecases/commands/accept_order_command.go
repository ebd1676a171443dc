package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand represents a driver's request to take a confirmed order.
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command for a driver to accept an order.
func NewAcceptOrderCommand(orderID int64, driverID kernel.UUID) (AcceptOrderCommand, error) {
	cmd := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c AcceptOrderCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the accepting driver's id.
func (c AcceptOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

func (c *AcceptOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidError("orderID")
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptOrderCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}
