package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
)

// MarkPickedUpCommandHandler handles the pickup confirmation transition.
type MarkPickedUpCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewMarkPickedUpCommandHandler creates a handler for pickup confirmation.
func NewMarkPickedUpCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) MarkPickedUpCommandHandler {
	return MarkPickedUpCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the pickup confirmation command.
func (h *MarkPickedUpCommandHandler) Handle(ctx context.Context, cmd MarkPickedUpCommand) error {
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
	if err = o.MarkPickedUp(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	driverID := cmd.DriverID()
	if err = recordTransition(ctx, uow, o, previous, &driverID, "package collected",
		order.EventPackagePickedUp, "package picked up", nil, now); err != nil {
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

	notifyStatus(ctx, h.notifier, o, "on the way")
	return nil
}
