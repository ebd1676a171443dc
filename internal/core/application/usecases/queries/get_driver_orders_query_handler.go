package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetDriverOrdersQueryHandler lists the deliveries a driver is currently
// responsible for. At most one exists under the assignment guard, but the
// query does not assume that.
type GetDriverOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetDriverOrdersQueryHandler creates a handler for a driver's active orders.
func NewGetDriverOrdersQueryHandler(db *gorm.DB) GetDriverOrdersQueryHandler {
	return GetDriverOrdersQueryHandler{db: db}
}

// Handle executes the driver's active orders query.
func (h GetDriverOrdersQueryHandler) Handle(ctx context.Context, query GetDriverOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderSummaryRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT `+orderSummaryColumns+`
		FROM orders
		WHERE driver_id = ?
		  AND status IN ('assigned', 'picked_up', 'in_transit')
		  AND deleted_at IS NULL
		ORDER BY created_at
	`, query.DriverID().String()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]OrderSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, row.toSummary())
	}
	return summaries, nil
}
