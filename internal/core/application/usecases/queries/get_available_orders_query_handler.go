package queries

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GetAvailableOrdersQueryHandler lists orders waiting for a driver,
// urgent first, then oldest first.
type GetAvailableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableOrdersQueryHandler creates a handler for the available
// orders feed.
func NewGetAvailableOrdersQueryHandler(db *gorm.DB) GetAvailableOrdersQueryHandler {
	return GetAvailableOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID                  int64      `gorm:"column:id"`
	OrderNumber         string     `gorm:"column:order_number"`
	Status              string     `gorm:"column:status"`
	Priority            string     `gorm:"column:priority"`
	PickupAddress       string     `gorm:"column:pickup_address"`
	DropoffAddress      string     `gorm:"column:dropoff_address"`
	DropoffContactName  string     `gorm:"column:dropoff_contact_name"`
	DropoffContactPhone string     `gorm:"column:dropoff_contact_phone"`
	PackageDescription  string     `gorm:"column:package_description"`
	PackageSize         string     `gorm:"column:package_size"`
	DeliveryFee         string     `gorm:"column:delivery_fee"`
	PlatformFee         string     `gorm:"column:platform_fee"`
	TotalCost           string     `gorm:"column:total_cost"`
	Currency            string     `gorm:"column:currency"`
	EstimatedDistanceKm float64    `gorm:"column:estimated_distance_km"`
	CreatedAt           time.Time  `gorm:"column:created_at"`
	DeliveredAt         *time.Time `gorm:"column:delivered_at"`
}

func (r orderSummaryRow) toSummary() OrderSummary {
	return OrderSummary{
		OrderID:             r.ID,
		OrderNumber:         r.OrderNumber,
		Status:              r.Status,
		Priority:            r.Priority,
		PickupAddress:       r.PickupAddress,
		DropoffAddress:      r.DropoffAddress,
		DropoffContactName:  r.DropoffContactName,
		DropoffContactPhone: r.DropoffContactPhone,
		PackageDescription:  r.PackageDescription,
		PackageSize:         r.PackageSize,
		DeliveryFee:         r.DeliveryFee,
		PlatformFee:         r.PlatformFee,
		TotalCost:           r.TotalCost,
		Currency:            r.Currency,
		EstimatedDistanceKm: r.EstimatedDistanceKm,
		CreatedAt:           r.CreatedAt,
		DeliveredAt:         r.DeliveredAt,
	}
}

const orderSummaryColumns = `
	id, order_number, status, priority,
	pickup_address, dropoff_address,
	dropoff_contact_name, dropoff_contact_phone,
	package_description, package_size,
	delivery_fee, platform_fee, total_cost, currency,
	estimated_distance_km, created_at, delivered_at
`

// Handle executes the available orders query.
func (h GetAvailableOrdersQueryHandler) Handle(ctx context.Context, query GetAvailableOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if query.DriverID() != nil {
		var active int64
		err := h.db.WithContext(ctx).Raw(`
			SELECT COUNT(*)
			FROM orders
			WHERE driver_id = ?
				AND status IN ('assigned', 'picked_up', 'in_transit')
				AND deleted_at IS NULL
		`, query.DriverID().String()).Scan(&active).Error
		if err != nil {
			return nil, err
		}
		if active > 0 {
			return []OrderSummary{}, nil
		}
	}

	var rows []orderSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE status = 'confirmed' AND driver_id IS NULL AND deleted_at IS NULL
		ORDER BY (priority = 'urgent') DESC, created_at
		LIMIT ? OFFSET ?
	`, query.Limit(), query.Offset()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}
