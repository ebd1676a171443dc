package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrMarkInTransitCommandIsNotConstructed = errors.New(
	"MarkInTransitCommand must be created via NewMarkInTransitCommand constructor",
)

// MarkInTransitCommand represents the assigned driver starting the dropoff
// leg, optionally reporting their current position.
type MarkInTransitCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	driverID    kernel.UUID
	coordinates *kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewMarkInTransitCommand creates a command to record the transit start.
// Coordinates are optional; pass nil when the driver's position is unknown.
func NewMarkInTransitCommand(orderID int64, driverID kernel.UUID, coordinates *kernel.Coordinates) (MarkInTransitCommand, error) {
	cmd := MarkInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return MarkInTransitCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return MarkInTransitCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.coordinates = coordinates
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkInTransitCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c MarkInTransitCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the reporting driver's id.
func (c MarkInTransitCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Coordinates returns the driver's reported position, nil when unreported.
func (c MarkInTransitCommand) Coordinates() *kernel.Coordinates {
	return c.coordinates
}
