package ports

import (
	"context"

	"deliverylink/internal/core/domain/model/order"
)

// TrackingRepository defines the persistence contract for the append-only
// order audit trail: status history and the customer-facing event timeline.
type TrackingRepository interface {
	// AddStatusHistory appends a status change to the order's audit trail.
	AddStatusHistory(ctx context.Context, entry order.StatusHistoryEntry) error

	// AddEvent appends an event to the order's public timeline.
	AddEvent(ctx context.Context, event order.TrackingEvent) error

	// GetStatusHistory retrieves an order's status changes, oldest first.
	GetStatusHistory(ctx context.Context, orderID int64) ([]order.StatusHistoryEntry, error)

	// GetEvents retrieves an order's timeline events, oldest first.
	GetEvents(ctx context.Context, orderID int64) ([]order.TrackingEvent, error)
}
