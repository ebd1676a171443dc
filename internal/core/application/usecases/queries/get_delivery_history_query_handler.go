package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"deliverylink/internal/core/domain/model/kernel"
)

// GetDeliveryHistoryQueryHandler serves a driver's completed deliveries.
type GetDeliveryHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryHistoryQueryHandler creates a handler for delivery history
// queries.
func NewGetDeliveryHistoryQueryHandler(db *gorm.DB) GetDeliveryHistoryQueryHandler {
	return GetDeliveryHistoryQueryHandler{db: db}
}

type deliveredOrderRow struct {
	ID             int64     `gorm:"column:id"`
	OrderNumber    string    `gorm:"column:order_number"`
	Priority       string    `gorm:"column:priority"`
	PickupAddress  string    `gorm:"column:pickup_address"`
	DropoffAddress string    `gorm:"column:dropoff_address"`
	DeliveryFee    string    `gorm:"column:delivery_fee"`
	Currency       string    `gorm:"column:currency"`
	DistanceKm     float64   `gorm:"column:distance_km"`
	DeliveredAt    time.Time `gorm:"column:delivered_at"`
}

// Handle executes the delivery history query.
func (h GetDeliveryHistoryQueryHandler) Handle(
	ctx context.Context, query GetDeliveryHistoryQuery,
) (DeliveryHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryHistoryResponse{}, err
	}

	var rows []deliveredOrderRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id, order_number, priority,
			pickup_address, dropoff_address,
			delivery_fee, currency,
			COALESCE(actual_distance_km, estimated_distance_km) AS distance_km,
			delivered_at
		FROM orders
		WHERE driver_id = ? AND status = 'delivered' AND deleted_at IS NULL
		ORDER BY delivered_at DESC
		LIMIT ?
	`, query.DriverID().String(), query.Limit()).Scan(&rows).Error
	if err != nil {
		return DeliveryHistoryResponse{}, err
	}

	var total string
	err = h.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(delivery_fee), 0)
		FROM orders
		WHERE driver_id = ? AND status = 'delivered' AND deleted_at IS NULL
	`, query.DriverID().String()).Scan(&total).Error
	if err != nil {
		return DeliveryHistoryResponse{}, err
	}

	totalEarnings, err := kernel.MoneyFromString(total)
	if err != nil {
		return DeliveryHistoryResponse{}, err
	}

	resp := DeliveryHistoryResponse{
		Deliveries:    make([]DeliveredOrderResponse, 0, len(rows)),
		TotalEarnings: totalEarnings.String(),
	}
	for _, row := range rows {
		resp.Deliveries = append(resp.Deliveries, DeliveredOrderResponse{
			OrderID:        row.ID,
			OrderNumber:    row.OrderNumber,
			Priority:       row.Priority,
			PickupAddress:  row.PickupAddress,
			DropoffAddress: row.DropoffAddress,
			DeliveryFee:    row.DeliveryFee,
			Currency:       row.Currency,
			DistanceKm:     row.DistanceKm,
			DeliveredAt:    row.DeliveredAt,
		})
	}
	return resp, nil
}
