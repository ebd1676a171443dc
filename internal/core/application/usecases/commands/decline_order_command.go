package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrDeclineOrderCommandIsNotConstructed = errors.New(
	"DeclineOrderCommand must be created via NewDeclineOrderCommand constructor",
)

// DeclineOrderCommand represents a driver passing on an available order.
// Declining records the decision on the timeline; the order stays confirmed
// and available to other drivers.
type DeclineOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID kernel.UUID
	reason   string

	guard guard.ConstructorGuard
}

// NewDeclineOrderCommand creates a command for a driver to decline an order.
func NewDeclineOrderCommand(orderID int64, driverID kernel.UUID, reason string) (DeclineOrderCommand, error) {
	cmd := DeclineOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return DeclineOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return DeclineOrderCommand{}, err
	}
	if reason == "" {
		return DeclineOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeclineOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeclineOrderCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c DeclineOrderCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the declining driver's id.
func (c DeclineOrderCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Reason returns why the driver declined.
func (c DeclineOrderCommand) Reason() string {
	return c.reason
}
