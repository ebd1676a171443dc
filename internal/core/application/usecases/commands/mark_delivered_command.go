package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrMarkDeliveredCommandIsNotConstructed = errors.New(
	"MarkDeliveredCommand must be created via NewMarkDeliveredCommand constructor",
)

// MarkDeliveredCommand represents the assigned driver closing an order with
// the recipient's confirmation code.
type MarkDeliveredCommand struct { //nolint:recvcheck //using for validation
	orderID       int64
	driverID      kernel.UUID
	code          string
	recipientName string
	notes         string

	guard guard.ConstructorGuard
}

// NewMarkDeliveredCommand creates a command to confirm delivery.
// RecipientName and notes are optional proof details.
func NewMarkDeliveredCommand(orderID int64, driverID kernel.UUID, code, recipientName, notes string) (MarkDeliveredCommand, error) {
	cmd := MarkDeliveredCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return MarkDeliveredCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return MarkDeliveredCommand{}, err
	}
	if code == "" {
		return MarkDeliveredCommand{}, errs.NewValueIsRequiredError("code")
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.code = code
	cmd.recipientName = recipientName
	cmd.notes = notes
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkDeliveredCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c MarkDeliveredCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the delivering driver's id.
func (c MarkDeliveredCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Code returns the confirmation code presented by the recipient.
func (c MarkDeliveredCommand) Code() string {
	return c.code
}

// RecipientName returns who received the package, if recorded.
func (c MarkDeliveredCommand) RecipientName() string {
	return c.recipientName
}

// Notes returns the driver's delivery notes, if any.
func (c MarkDeliveredCommand) Notes() string {
	return c.notes
}
