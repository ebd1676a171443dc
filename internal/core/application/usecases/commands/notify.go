package commands

import (
	"context"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
)

// notifyStatus sends the recipient a status update for an order. Called
// after commit only; the notifier swallows failures.
func notifyStatus(ctx context.Context, notifier ports.Notifier, o *order.Order, headline string) {
	recipient := o.Route().Dropoff().Contact()
	notifier.NotifyStatusUpdate(ctx, ports.StatusNotification{
		RecipientName:  recipient.Name(),
		RecipientPhone: recipient.Phone(),
		StatusLabel:    o.Status().String(),
		Headline:       headline,
		RouteSummary:   o.Route().Summary(),
		OrderNumber:    o.Number().String(),
	})
}
