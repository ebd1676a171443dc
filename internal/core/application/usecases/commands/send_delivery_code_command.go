package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrSendDeliveryCodeCommandIsNotConstructed = errors.New(
	"SendDeliveryCodeCommand must be created via NewSendDeliveryCodeCommand constructor",
)

// SendDeliveryCodeCommand represents the assigned driver requesting a fresh
// confirmation code for the recipient.
type SendDeliveryCodeCommand struct { //nolint:recvcheck //using for validation
	orderID  int64
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSendDeliveryCodeCommand creates a command to issue a delivery code.
func NewSendDeliveryCodeCommand(orderID int64, driverID kernel.UUID) (SendDeliveryCodeCommand, error) {
	cmd := SendDeliveryCodeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return SendDeliveryCodeCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return SendDeliveryCodeCommand{}, err
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendDeliveryCodeCommand) Validate() error {
	return c.guard.Validate(ErrSendDeliveryCodeCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c SendDeliveryCodeCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the requesting driver's id.
func (c SendDeliveryCodeCommand) DriverID() kernel.UUID {
	return c.driverID
}
