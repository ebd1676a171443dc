package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
)

// ReportIssueCommandHandler appends an issue report to an active order's
// timeline and audit trail. Statistics are untouched since no status changes.
type ReportIssueCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewReportIssueCommandHandler creates a handler for issue reporting.
func NewReportIssueCommandHandler(uowFactory TrackingUoWFactory) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the issue report command.
func (h *ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.AuthorizeIssueReport(cmd.DriverID()); err != nil {
		return err
	}

	driverID := cmd.DriverID()
	status := o.Status()

	// The status note keeps the report visible in the audit trail even
	// though no transition occurs.
	entry, err := order.NewStatusHistoryEntry(o.ID(), &status, status, &driverID, "issue: "+cmd.Description(), now)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddStatusHistory(ctx, entry); err != nil {
		return err
	}

	event, err := order.NewTrackingEvent(o.ID(), order.EventIssueReported, cmd.Description(), nil, &driverID, now)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
