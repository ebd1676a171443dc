package queries

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"deliverylink/internal/pkg/errs"
)

// GetOrderDetailsQueryHandler reads one order with its full audit trail.
type GetOrderDetailsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailsQueryHandler creates a handler for order detail queries.
func NewGetOrderDetailsQueryHandler(db *gorm.DB) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{db: db}
}

type orderDetailsRow struct {
	ID                  int64      `gorm:"column:id"`
	OrderNumber         string     `gorm:"column:order_number"`
	Status              string     `gorm:"column:status"`
	Priority            string     `gorm:"column:priority"`
	PickupAddress       string     `gorm:"column:pickup_address"`
	PickupInstructions  string     `gorm:"column:pickup_instructions"`
	DropoffAddress      string     `gorm:"column:dropoff_address"`
	DropoffInstructions string     `gorm:"column:dropoff_instructions"`
	DropoffContactName  string     `gorm:"column:dropoff_contact_name"`
	DropoffContactPhone string     `gorm:"column:dropoff_contact_phone"`
	PackageDescription  string     `gorm:"column:package_description"`
	PackageSize         string     `gorm:"column:package_size"`
	PackageQuantity     int        `gorm:"column:package_quantity"`
	PackageWeightKg     float64    `gorm:"column:package_weight_kg"`
	PackageValue        string     `gorm:"column:package_value"`
	IsFragile           bool       `gorm:"column:is_fragile"`
	DeliveryFee         string     `gorm:"column:delivery_fee"`
	PlatformFee         string     `gorm:"column:platform_fee"`
	TotalCost           string     `gorm:"column:total_cost"`
	Currency            string     `gorm:"column:currency"`
	EstimatedDistanceKm float64    `gorm:"column:estimated_distance_km"`
	EstimatedMinutes    int        `gorm:"column:estimated_minutes"`
	ProofType           *string    `gorm:"column:proof_type"`
	RecipientName       *string    `gorm:"column:recipient_name"`
	DeliveryNotes       *string    `gorm:"column:delivery_notes"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	DeliveredAt         *time.Time `gorm:"column:delivered_at"`
}

type statusChangeRow struct {
	PreviousStatus *string   `gorm:"column:previous_status"`
	NewStatus      string    `gorm:"column:new_status"`
	Reason         string    `gorm:"column:reason"`
	ChangedAt      time.Time `gorm:"column:changed_at"`
}

type timelineEventRow struct {
	EventType   string    `gorm:"column:event_type"`
	Description string    `gorm:"column:description"`
	Latitude    *float64  `gorm:"column:latitude"`
	Longitude   *float64  `gorm:"column:longitude"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

// Handle executes the order details query.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderDetailsResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderDetailsResponse{}, err
	}

	var row orderDetailsRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number, status, priority,
			pickup_address, pickup_instructions,
			dropoff_address, dropoff_instructions,
			dropoff_contact_name, dropoff_contact_phone,
			package_description, package_size, package_quantity,
			package_weight_kg, package_value, is_fragile,
			delivery_fee, platform_fee, total_cost, currency,
			estimated_distance_km, estimated_minutes,
			proof_type, recipient_name, delivery_notes,
			created_at, delivered_at
		FROM orders
		WHERE id = ? AND deleted_at IS NULL
	`, query.OrderID()).Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return OrderDetailsResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderDetailsResponse{}, err
	}

	var history []statusChangeRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT previous_status, new_status, reason, changed_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY changed_at, id
	`, query.OrderID()).Scan(&history).Error; err != nil {
		return OrderDetailsResponse{}, err
	}

	var events []timelineEventRow
	if err = h.db.WithContext(ctx).Raw(`
		SELECT event_type, description, latitude, longitude, created_at
		FROM order_tracking_events
		WHERE order_id = ?
		ORDER BY created_at, id
	`, query.OrderID()).Scan(&events).Error; err != nil {
		return OrderDetailsResponse{}, err
	}

	resp := OrderDetailsResponse{
		OrderSummary: OrderSummary{
			OrderID:             row.ID,
			OrderNumber:         row.OrderNumber,
			Status:              row.Status,
			Priority:            row.Priority,
			PickupAddress:       row.PickupAddress,
			DropoffAddress:      row.DropoffAddress,
			DropoffContactName:  row.DropoffContactName,
			DropoffContactPhone: row.DropoffContactPhone,
			PackageDescription:  row.PackageDescription,
			PackageSize:         row.PackageSize,
			DeliveryFee:         row.DeliveryFee,
			PlatformFee:         row.PlatformFee,
			TotalCost:           row.TotalCost,
			Currency:            row.Currency,
			EstimatedDistanceKm: row.EstimatedDistanceKm,
			CreatedAt:           row.CreatedAt,
			DeliveredAt:         row.DeliveredAt,
		},
		PickupInstructions:  row.PickupInstructions,
		DropoffInstructions: row.DropoffInstructions,
		PackageQuantity:     row.PackageQuantity,
		PackageWeightKg:     row.PackageWeightKg,
		PackageValue:        row.PackageValue,
		IsFragile:           row.IsFragile,
		EstimatedMinutes:    row.EstimatedMinutes,
		History:             make([]StatusChangeResponse, 0, len(history)),
		Events:              make([]TimelineEventResponse, 0, len(events)),
	}
	if row.ProofType != nil {
		resp.ProofType = *row.ProofType
	}
	if row.RecipientName != nil {
		resp.RecipientName = *row.RecipientName
	}
	if row.DeliveryNotes != nil {
		resp.DeliveryNotes = *row.DeliveryNotes
	}

	for _, change := range history {
		resp.History = append(resp.History, StatusChangeResponse{
			PreviousStatus: change.PreviousStatus,
			NewStatus:      change.NewStatus,
			Reason:         change.Reason,
			ChangedAt:      change.ChangedAt,
		})
	}
	for _, event := range events {
		resp.Events = append(resp.Events, TimelineEventResponse{
			EventType:   event.EventType,
			Description: event.Description,
			Latitude:    event.Latitude,
			Longitude:   event.Longitude,
			CreatedAt:   event.CreatedAt,
		})
	}

	return resp, nil
}
