package commands

import (
	"context"
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/pkg/errs"
)

// MarkDeliveredCommandHandler handles the final delivery transition.
//
// The presented code is matched against the newest issued code for the
// order. A match that has expired fails with a distinct error so the driver
// knows to request a fresh code. The consumed code row is deleted in the
// same transaction as the status change, so it can never confirm a second
// delivery.
type MarkDeliveredCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
}

// NewMarkDeliveredCommandHandler creates a handler for delivery confirmation.
func NewMarkDeliveredCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) MarkDeliveredCommandHandler {
	return MarkDeliveredCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
	}
}

// Handle processes the delivery confirmation command.
func (h *MarkDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkDeliveredCommand) error {
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

	if err = o.AuthorizeDelivery(cmd.DriverID()); err != nil {
		return err
	}

	codeRepo := uow.DeliveryCodeRepository()
	code, err := codeRepo.GetLatestMatch(ctx, o.ID(), cmd.Code())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return errs.NewInvalidOTPCodeError(o.ID())
		}
		return err
	}
	if err = code.Verify(cmd.Code(), now); err != nil {
		return err
	}

	previous := o.Status()
	proof := order.DeliveryProof{
		ProofType:     order.ProofTypeOTP,
		ProofData:     cmd.Code(),
		RecipientName: cmd.RecipientName(),
		Notes:         cmd.Notes(),
	}
	if err = o.Deliver(cmd.DriverID(), proof, now); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}
	if err = codeRepo.Delete(ctx, code.ID); err != nil {
		return err
	}

	driverID := cmd.DriverID()
	if err = recordTransition(ctx, uow, o, previous, &driverID, "delivery confirmed with code",
		order.EventDelivered, "package delivered", nil, now); err != nil {
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

	notifyStatus(ctx, h.notifier, o, "delivered")
	return nil
}
