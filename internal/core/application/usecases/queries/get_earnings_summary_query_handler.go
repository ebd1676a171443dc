package queries

import (
	"context"
	"time"

	"gorm.io/gorm"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/stats"
)

// GetEarningsSummaryQueryHandler aggregates a driver's delivery earnings.
type GetEarningsSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetEarningsSummaryQueryHandler creates a handler for earnings
// summary queries.
func NewGetEarningsSummaryQueryHandler(db *gorm.DB) GetEarningsSummaryQueryHandler {
	return GetEarningsSummaryQueryHandler{db: db}
}

type earningsRow struct {
	TotalDeliveries  int    `gorm:"column:total_deliveries"`
	TotalEarnings    string `gorm:"column:total_earnings"`
	UrgentDeliveries int    `gorm:"column:urgent_deliveries"`
	UrgentEarnings   string `gorm:"column:urgent_earnings"`
	Currency         string `gorm:"column:currency"`
}

// Handle executes the earnings summary query.
func (h GetEarningsSummaryQueryHandler) Handle(
	ctx context.Context, query GetEarningsSummaryQuery,
) (EarningsSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return EarningsSummaryResponse{}, err
	}

	sql := `
		SELECT
			COUNT(*) AS total_deliveries,
			COALESCE(SUM(delivery_fee), 0) AS total_earnings,
			COUNT(*) FILTER (WHERE priority = 'urgent') AS urgent_deliveries,
			COALESCE(SUM(delivery_fee) FILTER (WHERE priority = 'urgent'), 0) AS urgent_earnings,
			COALESCE(MAX(currency), 'KES') AS currency
		FROM orders
		WHERE driver_id = ? AND status = 'delivered' AND deleted_at IS NULL
	`
	args := []any{query.DriverID().String()}
	if since, bounded := periodStart(query.Period(), query.Now()); bounded {
		sql += ` AND delivered_at >= ?`
		args = append(args, since)
	}

	var row earningsRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Take(&row).Error; err != nil {
		return EarningsSummaryResponse{}, err
	}

	totalEarnings, err := kernel.MoneyFromString(row.TotalEarnings)
	if err != nil {
		return EarningsSummaryResponse{}, err
	}
	urgentEarnings, err := kernel.MoneyFromString(row.UrgentEarnings)
	if err != nil {
		return EarningsSummaryResponse{}, err
	}

	average := kernel.Money{}
	if row.TotalDeliveries > 0 {
		average = kernel.NewMoneyFromCents(totalEarnings.Cents() / int64(row.TotalDeliveries))
	}

	return EarningsSummaryResponse{
		Period:                     string(query.Period()),
		TotalDeliveries:            row.TotalDeliveries,
		TotalEarnings:              totalEarnings.String(),
		UrgentDeliveries:           row.UrgentDeliveries,
		UrgentEarnings:             urgentEarnings.String(),
		AverageEarningsPerDelivery: average.String(),
		Currency:                   row.Currency,
	}, nil
}

func periodStart(period EarningsPeriod, now time.Time) (time.Time, bool) {
	switch period {
	case PeriodToday:
		return stats.DayOf(now), true
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	default:
		return time.Time{}, false
	}
}
