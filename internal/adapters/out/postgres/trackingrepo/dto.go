// Package trackingrepo persists the append-only order ledgers: the status
// change audit trail and the customer-facing event timeline. Rows are only
// ever inserted and read back in order, never updated.
package trackingrepo

import (
	"time"

	"github.com/google/uuid"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// StatusHistoryDTO is one row of the status change audit trail.
type StatusHistoryDTO struct {
	ID             int64      `gorm:"primaryKey;autoIncrement"`
	OrderID        int64      `gorm:"column:order_id;index"`
	PreviousStatus *string    `gorm:"column:previous_status;size:20"`
	NewStatus      string     `gorm:"column:new_status;size:20"`
	ChangedBy      *uuid.UUID `gorm:"type:uuid;column:changed_by"`
	Reason         string     `gorm:"column:reason"`
	ChangedAt      time.Time  `gorm:"column:changed_at"`
}

// TableName overrides GORM's default naming to use "order_status_history".
func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// TrackingEventDTO is one row of the public event timeline.
type TrackingEventDTO struct {
	ID          int64      `gorm:"primaryKey;autoIncrement"`
	OrderID     int64      `gorm:"column:order_id;index"`
	EventType   string     `gorm:"column:event_type;size:30"`
	Description string     `gorm:"column:description"`
	Latitude    *float64   `gorm:"column:latitude"`
	Longitude   *float64   `gorm:"column:longitude"`
	CreatedBy   *uuid.UUID `gorm:"type:uuid;column:created_by"`
	CreatedAt   time.Time  `gorm:"column:created_at"`
}

// TableName overrides GORM's default naming to use "order_tracking_events".
func (TrackingEventDTO) TableName() string {
	return "order_tracking_events"
}

func historyFromDomain(entry order.StatusHistoryEntry) StatusHistoryDTO {
	dto := StatusHistoryDTO{
		OrderID:   entry.OrderID,
		NewStatus: string(entry.NewStatus),
		Reason:    entry.Reason,
		ChangedAt: entry.ChangedAt,
	}
	if entry.PreviousStatus != nil {
		previous := string(*entry.PreviousStatus)
		dto.PreviousStatus = &previous
	}
	if entry.ChangedBy != nil {
		raw := entry.ChangedBy.Bytes()
		dto.ChangedBy = &raw
	}
	return dto
}

func historyToDomain(dto StatusHistoryDTO) (order.StatusHistoryEntry, error) {
	entry := order.StatusHistoryEntry{
		OrderID:   dto.OrderID,
		NewStatus: order.Status(dto.NewStatus),
		Reason:    dto.Reason,
		ChangedAt: dto.ChangedAt,
	}
	if dto.PreviousStatus != nil {
		previous := order.Status(*dto.PreviousStatus)
		entry.PreviousStatus = &previous
	}
	if dto.ChangedBy != nil {
		id, err := kernel.UUIDFromBytes((*dto.ChangedBy)[:])
		if err != nil {
			return order.StatusHistoryEntry{}, err
		}
		entry.ChangedBy = &id
	}
	return entry, nil
}

func eventFromDomain(event order.TrackingEvent) TrackingEventDTO {
	dto := TrackingEventDTO{
		OrderID:     event.OrderID,
		EventType:   string(event.EventType),
		Description: event.Description,
		CreatedAt:   event.CreatedAt,
	}
	if event.Coordinates != nil {
		lat, lon := event.Coordinates.Latitude(), event.Coordinates.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}
	if event.CreatedBy != nil {
		raw := event.CreatedBy.Bytes()
		dto.CreatedBy = &raw
	}
	return dto
}

func eventToDomain(dto TrackingEventDTO) (order.TrackingEvent, error) {
	event := order.TrackingEvent{
		OrderID:     dto.OrderID,
		EventType:   order.EventType(dto.EventType),
		Description: dto.Description,
		CreatedAt:   dto.CreatedAt,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		coords, err := kernel.NewCoordinates(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return order.TrackingEvent{}, err
		}
		event.Coordinates = &coords
	}
	if dto.CreatedBy != nil {
		id, err := kernel.UUIDFromBytes((*dto.CreatedBy)[:])
		if err != nil {
			return order.TrackingEvent{}, err
		}
		event.CreatedBy = &id
	}
	return event, nil
}
