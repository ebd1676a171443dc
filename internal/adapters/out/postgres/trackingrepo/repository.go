package trackingrepo

import (
	"context"

	"gorm.io/gorm"

	"deliverylink/internal/core/domain/model/order"
)

// GormTrackingRepository implements ports.TrackingRepository using GORM.
type GormTrackingRepository struct {
	db *gorm.DB
}

// NewGormTrackingRepository creates a new GORM tracking repository.
func NewGormTrackingRepository(db *gorm.DB) *GormTrackingRepository {
	return &GormTrackingRepository{db: db}
}

// AddStatusHistory appends a status change to the order's audit trail.
func (r *GormTrackingRepository) AddStatusHistory(ctx context.Context, entry order.StatusHistoryEntry) error {
	dto := historyFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// AddEvent appends an event to the order's public timeline.
func (r *GormTrackingRepository) AddEvent(ctx context.Context, event order.TrackingEvent) error {
	dto := eventFromDomain(event)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetStatusHistory retrieves an order's status changes, oldest first.
func (r *GormTrackingRepository) GetStatusHistory(ctx context.Context, orderID int64) ([]order.StatusHistoryEntry, error) {
	var dtos []StatusHistoryDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	entries := make([]order.StatusHistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := historyToDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetEvents retrieves an order's timeline events, oldest first.
func (r *GormTrackingRepository) GetEvents(ctx context.Context, orderID int64) ([]order.TrackingEvent, error) {
	var dtos []TrackingEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]order.TrackingEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := eventToDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
