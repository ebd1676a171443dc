package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
)

// MarkInTransitCommandHandler handles the transit start transition.
type MarkInTransitCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewMarkInTransitCommandHandler creates a handler for the transit transition.
func NewMarkInTransitCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) MarkInTransitCommandHandler {
	return MarkInTransitCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the transit start command.
func (h *MarkInTransitCommandHandler) Handle(ctx context.Context, cmd MarkInTransitCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = o.MarkInTransit(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	driverID := cmd.DriverID()
	if err = recordTransition(ctx, uow, o, previous, &driverID, "driver en route to dropoff",
		order.EventInTransit, "out for delivery", cmd.Coordinates(), now); err != nil {
		return err
	}

	if err = accumulateStatistics(ctx, uow, o, false, now); err != nil {
		return err
	}
	if err = recomputeSnapshot(ctx, uow, now); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyStatus(ctx, h.notifier, o, "arriving soon")
	return nil
}
