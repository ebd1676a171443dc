package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

// DeclineOrderCommandHandler records a driver declining an available order.
// The order must still be confirmed and driverless; the decline itself is
// only a timeline entry.
type DeclineOrderCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewDeclineOrderCommandHandler creates a handler for order declines.
func NewDeclineOrderCommandHandler(uowFactory TrackingUoWFactory) DeclineOrderCommandHandler {
	return DeclineOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the decline command.
func (h *DeclineOrderCommandHandler) Handle(ctx context.Context, cmd DeclineOrderCommand) error {
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
	if o.Status() != order.Confirmed || o.Driver() != nil {
		return errs.NewObjectNotFoundError("order", cmd.OrderID())
	}

	driverID := cmd.DriverID()
	event, err := order.NewTrackingEvent(o.ID(), order.EventOrderDeclined, "declined: "+cmd.Reason(), nil, &driverID, now)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
