package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
)

// UpdateLocationCommandHandler records a driver position ping on the order
// timeline. Pings are only accepted while the package is with the driver.
type UpdateLocationCommandHandler struct {
	uowFactory TrackingUoWFactory
}

// NewUpdateLocationCommandHandler creates a handler for location pings.
func NewUpdateLocationCommandHandler(uowFactory TrackingUoWFactory) UpdateLocationCommandHandler {
	return UpdateLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the location ping.
func (h *UpdateLocationCommandHandler) Handle(ctx context.Context, cmd UpdateLocationCommand) error {
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
	if err = o.AuthorizeDeliveryCode(cmd.DriverID()); err != nil {
		// Same window as code issuance: picked_up or in_transit only.
		return err
	}

	coords := cmd.Coordinates()
	driverID := cmd.DriverID()
	event, err := order.NewTrackingEvent(o.ID(), order.EventLocationUpdate, "driver location update", &coords, &driverID, now)
	if err != nil {
		return err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
