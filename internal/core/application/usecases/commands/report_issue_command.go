package commands

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrReportIssueCommandIsNotConstructed = errors.New(
	"ReportIssueCommand must be created via NewReportIssueCommand constructor",
)

// ReportIssueCommand represents the assigned driver flagging a problem with
// an active delivery. Reporting never changes the order's status.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	orderID     int64
	driverID    kernel.UUID
	description string

	guard guard.ConstructorGuard
}

// NewReportIssueCommand creates a command to report a delivery issue.
func NewReportIssueCommand(orderID int64, driverID kernel.UUID, description string) (ReportIssueCommand, error) {
	cmd := ReportIssueCommand{
		guard: guard.NewConstructorGuard(),
	}

	if orderID <= 0 {
		return ReportIssueCommand{}, errs.NewValueIsInvalidError("orderID")
	}
	if err := driverID.Validate(); err != nil {
		return ReportIssueCommand{}, err
	}
	if description == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("description")
	}

	cmd.orderID = orderID
	cmd.driverID = driverID
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (c ReportIssueCommand) OrderID() int64 {
	return c.orderID
}

// DriverID returns the reporting driver's id.
func (c ReportIssueCommand) DriverID() kernel.UUID {
	return c.driverID
}

// Description returns the issue description.
func (c ReportIssueCommand) Description() string {
	return c.description
}
