package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrMarkPickedUpCommandIsNotConstructed = errors.New(
	"MarkPickedUpCommand must be created via NewMarkPickedUpCommand constructor",
)

// MarkPickedUpCommand represents the assigned driver confirming package
// collection at the pickup waypoint.
type MarkPickedUpCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkPickedUpCommand creates a command to record package pickup.
func NewMarkPickedUpCommand(orderID int64, driverID kernel.UUID) (MarkPickedUpCommand, error) {
	cmd := MarkPickedUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return MarkPickedUpCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return MarkPickedUpCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkPickedUpCommand) Validate() error {
	return c.guard.Validate(ErrMarkPickedUpCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c MarkPickedUpCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the reporting driver's id.
func (c MarkPickedUpCommand) DriverID() kernel.UUID {
	return c.driverID
}
