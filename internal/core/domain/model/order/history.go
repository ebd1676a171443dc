package order

import (
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

// EventType classifies a tracking event on an order's timeline.
type EventType string

const (
	EventOrderCreated    EventType = "order_created"
	EventOrderAssigned   EventType = "order_assigned"
	EventPackagePickedUp EventType = "package_picked_up"
	EventInTransit       EventType = "in_transit"
	EventDelivered       EventType = "delivered"
	EventCancelled       EventType = "cancelled"
	EventIssueReported   EventType = "issue_reported"
	EventLocationUpdate  EventType = "location_update"
	EventOrderDeclined   EventType = "order_declined"
)

// Validate checks the event type is one of the known kinds.
func (e EventType) Validate() error {
	switch e {
	case EventOrderCreated, EventOrderAssigned, EventPackagePickedUp,
		EventInTransit, EventDelivered, EventCancelled,
		EventIssueReported, EventLocationUpdate, EventOrderDeclined:
		return nil
	}
	return errs.NewValueIsInvalidError("eventType")
}

func (e EventType) String() string { return string(e) }

// StatusHistoryEntry is an append-only audit record of one status change.
// The previous status is nil for the entry written at placement.
type StatusHistoryEntry struct {
	OrderID        int64
	PreviousStatus *Status
	NewStatus      Status
	ChangedBy      *kernel.UUID
	Reason         string
	ChangedAt      time.Time
}

// NewStatusHistoryEntry records a transition on an order's audit trail.
func NewStatusHistoryEntry(
	orderID int64,
	previous *Status,
	next Status,
	changedBy *kernel.UUID,
	reason string,
	at time.Time,
) (StatusHistoryEntry, error) {
	if err := next.Validate(); err != nil {
		return StatusHistoryEntry{}, err
	}
	if previous != nil {
		if err := previous.Validate(); err != nil {
			return StatusHistoryEntry{}, err
		}
	}

	return StatusHistoryEntry{
		OrderID:        orderID,
		PreviousStatus: previous,
		NewStatus:      next,
		ChangedBy:      changedBy,
		Reason:         reason,
		ChangedAt:      at,
	}, nil
}

// TrackingEvent is a customer-facing timeline entry. Unlike the status
// history it also carries free-form events such as issue reports and driver
// location pings that do not change the order's status.
type TrackingEvent struct {
	OrderID     int64
	EventType   EventType
	Description string
	Coordinates *kernel.Coordinates
	CreatedBy   *kernel.UUID
	CreatedAt   time.Time
}

// NewTrackingEvent appends an entry to the order's public timeline.
func NewTrackingEvent(
	orderID int64,
	eventType EventType,
	description string,
	coordinates *kernel.Coordinates,
	createdBy *kernel.UUID,
	at time.Time,
) (TrackingEvent, error) {
	if err := eventType.Validate(); err != nil {
		return TrackingEvent{}, err
	}
	if description == "" {
		return TrackingEvent{}, errs.NewValueIsRequiredError("description")
	}

	return TrackingEvent{
		OrderID:     orderID,
		EventType:   eventType,
		Description: description,
		Coordinates: coordinates,
		CreatedBy:   createdBy,
		CreatedAt:   at,
	}, nil
}
