package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrUpdateLocationCommandIsNotConstructed = errors.New(
	"UpdateLocationCommand must be created via NewUpdateLocationCommand constructor",
)

// UpdateLocationCommand represents a position ping from the driver carrying
// the package.
type UpdateLocationCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	driverID    kernel.UUID
	coordinates kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewUpdateLocationCommand creates a command to record the driver's position.
func NewUpdateLocationCommand(orderID int64, driverID kernel.UUID, coordinates kernel.Coordinates) (UpdateLocationCommand, error) {
	cmd := UpdateLocationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return UpdateLocationCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return UpdateLocationCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.coordinates = coordinates
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLocationCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c UpdateLocationCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the reporting driver's id.
func (c UpdateLocationCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Coordinates returns the reported position.
func (c UpdateLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}
