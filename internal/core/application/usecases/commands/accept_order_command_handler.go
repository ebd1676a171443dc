package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/pkg/errs"
)

// AcceptOrderCommandHandler handles a driver taking a confirmed order.
//
// Two layers keep acceptance exclusive. The assignment guard rejects a
// driver who already has an active delivery. The order itself, read under a
// row lock, rejects acceptance unless it is still confirmed and driverless,
// so of two concurrent accept calls exactly one wins and the loser gets an
// invalid-state error.
type AcceptOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewAcceptOrderCommandHandler creates a handler for order acceptance.
func NewAcceptOrderCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the acceptance command.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	// Assignment guard: at most one active delivery per driver. Runs in the
	// same transaction as the assignment write.
	active, err := orderRepo.GetActiveByDriver(ctx, cmd.DriverID())
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errs.NewExclusivityViolationError(cmd.DriverID().String())
	}

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	previous := o.Status()
	if err = o.Accept(cmd.DriverID(), now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	driverID := cmd.DriverID()
	if err = recordTransition(ctx, uow, o, previous, &driverID, "driver accepted order",
		order.EventOrderAssigned, "driver assigned", nil, now); err != nil {
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

	notifyStatus(ctx, h.notifier, o, "driver assigned")
	return nil
}
