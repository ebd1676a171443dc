package queries

import (
	"context"

	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/core/ports"
	"deliverylink/internal/pkg/errs"
)

// GetStatisticsQueryHandler serves the daily and per-business rollup ranges.
type GetStatisticsQueryHandler struct {
	statsRepository ports.StatsRepository
}

// NewGetStatisticsQueryHandler creates the statistics range handler.
func NewGetStatisticsQueryHandler(statsRepository ports.StatsRepository) (*GetStatisticsQueryHandler, error) {
	if statsRepository == nil {
		return nil, errs.NewValueIsRequiredError("statsRepository")
	}
	return &GetStatisticsQueryHandler{statsRepository: statsRepository}, nil
}

// HandleDaily returns system-wide rows for the range, oldest first. Dates
// with no activity have no row and are simply absent from the result.
func (h *GetStatisticsQueryHandler) HandleDaily(
	ctx context.Context, query GetDailyStatisticsQuery,
) ([]StatisticsRowResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.statsRepository.GetDailyRange(ctx, stats.DayOf(query.From()), stats.DayOf(query.To()))
	if err != nil {
		return nil, err
	}

	responses := make([]StatisticsRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, dailyRowToResponse(row))
	}
	return responses, nil
}

// HandleBusiness returns one business's rows for the range, oldest first.
func (h *GetStatisticsQueryHandler) HandleBusiness(
	ctx context.Context, query GetBusinessStatisticsQuery,
) ([]StatisticsRowResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.statsRepository.GetBusinessRange(
		ctx, query.Business(), stats.DayOf(query.From()), stats.DayOf(query.To()),
	)
	if err != nil {
		return nil, err
	}

	responses := make([]StatisticsRowResponse, 0, len(rows))
	for _, row := range rows {
		responses = append(responses, businessRowToResponse(row))
	}
	return responses, nil
}

// HandleToday returns the system-wide row for the current calendar date, or
// a zeroed row when nothing has happened today yet.
func (h *GetStatisticsQueryHandler) HandleToday(ctx context.Context, query GetTodayStatisticsQuery) (StatisticsRowResponse, error) {
	if err := query.Validate(); err != nil {
		return StatisticsRowResponse{}, err
	}

	day := stats.DayOf(query.Now())
	rows, err := h.statsRepository.GetDailyRange(ctx, day, day)
	if err != nil {
		return StatisticsRowResponse{}, err
	}
	if len(rows) == 0 {
		return dailyRowToResponse(stats.NewDailyStatistics(day)), nil
	}
	return dailyRowToResponse(rows[0]), nil
}

func dailyRowToResponse(row *stats.DailyStatistics) StatisticsRowResponse {
	return StatisticsRowResponse{
		Date: row.Date,

		TotalOrders:     row.TotalOrders,
		ConfirmedOrders: row.ConfirmedOrders,
		AssignedOrders:  row.AssignedOrders,
		PickedUpOrders:  row.PickedUpOrders,
		InTransitOrders: row.InTransitOrders,
		DeliveredOrders: row.DeliveredOrders,
		CancelledOrders: row.CancelledOrders,

		TotalRevenue:      row.TotalRevenue.String(),
		PlatformFees:      row.PlatformFees.String(),
		DeliveryFees:      row.DeliveryFees.String(),
		TotalPackageValue: row.TotalPackageValue.String(),

		UrgentOrders:    row.UrgentOrders,
		NormalOrders:    row.NormalOrders,
		ScheduledOrders: row.ScheduledOrders,

		FragilePackages: row.FragilePackages,
		SmallPackages:   row.SmallPackages,
		MediumPackages:  row.MediumPackages,
		LargePackages:   row.LargePackages,
	}
}

func businessRowToResponse(row *stats.BusinessStatistics) StatisticsRowResponse {
	return StatisticsRowResponse{
		Date: row.Date,

		TotalOrders:     row.TotalOrders,
		ConfirmedOrders: row.ConfirmedOrders,
		AssignedOrders:  row.AssignedOrders,
		PickedUpOrders:  row.PickedUpOrders,
		InTransitOrders: row.InTransitOrders,
		DeliveredOrders: row.DeliveredOrders,
		CancelledOrders: row.CancelledOrders,

		TotalRevenue:      row.TotalSpent.String(),
		PlatformFees:      row.TotalPlatformFees.String(),
		DeliveryFees:      row.TotalDeliveryFees.String(),
		TotalPackageValue: row.TotalPackageValue.String(),

		UrgentOrders:    row.UrgentOrders,
		NormalOrders:    row.NormalOrders,
		ScheduledOrders: row.ScheduledOrders,

		FragilePackages: row.FragilePackages,
		SmallPackages:   row.SmallPackages,
		MediumPackages:  row.MediumPackages,
		LargePackages:   row.LargePackages,
	}
}
