package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
)

// CancelOrderCommandHandler handles order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = o.AuthorizeCancel(cmd.CancelledBy()); err != nil {
		return err
	}

	previous := o.Status()
	if err = o.Cancel(now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	cancelledBy := cmd.CancelledBy()
	if err = recordTransition(ctx, uow, o, previous, &cancelledBy, cmd.Reason(),
		order.EventCancelled, "order cancelled", nil, now); err != nil {
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

	notifyStatus(ctx, h.notifier, o, "order cancelled")
	return nil
}
