package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

// CancelOrderCommand represents a request to cancel an order before pickup.
// The reason is mandatory and lands in the status history.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	cancelledBy kernel.UUID
	reason      string

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID int64, cancelledBy kernel.UUID, reason string) (CancelOrderCommand, error) {
	cmd := CancelOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return CancelOrderCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := cancelledBy.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}
	if reason == "" {
		return CancelOrderCommand{}, errs.NewValueIsRequiredError("reason")
	}

	cmd.orderID = orderID
	cmd.cancelledBy = cancelledBy
	cmd.reason = reason
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c CancelOrderCommand) OrderID() int64 {
	return c.orderID
}

// CancelledBy returns the id of the actor cancelling the order.
func (c CancelOrderCommand) CancelledBy() kernel.UUID {
	return c.cancelledBy
}

// Reason returns the mandatory cancellation reason.
func (c CancelOrderCommand) Reason() string {
	return c.reason
}
