package commands

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/domain/services"
	"deliverylink/internal/core/ports"
)

// SendDeliveryCodeCommandHandler issues a one-time delivery confirmation
// code and sends it to the recipient.
//
// Issuing does not change order status. Earlier unconsumed codes stay in
// place; verification at delivery time matches against the newest one.
type SendDeliveryCodeCommandHandler struct {
	uowFactory LifecycleUoWFactory
	notifier   ports.Notifier
	codeGen    services.CodeGenerator
}

// NewSendDeliveryCodeCommandHandler creates a handler for code issuance.
func NewSendDeliveryCodeCommandHandler(uowFactory LifecycleUoWFactory, notifier ports.Notifier) SendDeliveryCodeCommandHandler {
	return SendDeliveryCodeCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		codeGen:    services.NewCodeGenerator(),
	}
}

// Handle processes the code issuance command.
func (h *SendDeliveryCodeCommandHandler) Handle(ctx context.Context, cmd SendDeliveryCodeCommand) error {
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
		return err
	}

	value, err := h.codeGen.Generate()
	if err != nil {
		return err
	}

	code, err := order.NewDeliveryCode(o.ID(), value, now)
	if err != nil {
		return err
	}
	if err = uow.DeliveryCodeRepository().Add(ctx, code); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	recipient := o.Route().Dropoff().Contact()
	h.notifier.NotifyDeliveryCode(ctx, ports.CodeNotification{
		RecipientName:  recipient.Name(),
		RecipientPhone: recipient.Phone(),
		Code:           value,
		OrderNumber:    o.Number().String(),
	})

	return nil
}
