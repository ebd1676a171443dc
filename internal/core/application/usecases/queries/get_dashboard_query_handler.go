package queries

import (
	"context"
	"log/slog"

	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/core/ports"
)

// GetDashboardQueryHandler serves the dashboard snapshot through the read
// cache. A cache failure falls back to the store; the store row is then
// written back to the cache best-effort.
type GetDashboardQueryHandler struct {
	statsRepo ports.StatsRepository
	cache     ports.SnapshotCache
	logger    *slog.Logger
}

// NewGetDashboardQueryHandler creates a handler for the dashboard query.
func NewGetDashboardQueryHandler(statsRepo ports.StatsRepository, cache ports.SnapshotCache, logger *slog.Logger) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		statsRepo: statsRepo,
		cache:     cache,
		logger:    logger.With("component", "dashboard_query"),
	}
}

// Handle executes the dashboard query.
func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (DashboardResponse, error) {
	if err := query.Validate(); err != nil {
		return DashboardResponse{}, err
	}

	if cached, err := h.cache.Get(ctx); err == nil {
		return snapshotToResponse(cached), nil
	}

	snapshot, err := h.statsRepo.GetSnapshot(ctx)
	if err != nil {
		return DashboardResponse{}, err
	}

	if err = h.cache.Set(ctx, snapshot); err != nil {
		h.logger.Warn("snapshot cache write failed", "error", err)
	}

	return snapshotToResponse(snapshot), nil
}

func snapshotToResponse(s *stats.DashboardSnapshot) DashboardResponse {
	return DashboardResponse{
		ActiveOrders:      s.ActiveOrders,
		PendingOrders:     s.PendingOrders,
		ConfirmedOrders:   s.ConfirmedOrders,
		AssignedOrders:    s.AssignedOrders,
		PickedUpOrders:    s.PickedUpOrders,
		InTransitOrders:   s.InTransitOrders,
		TodayOrders:       s.TodayOrders,
		TodayRevenue:      s.TodayRevenue.String(),
		TodayPlatformFees: s.TodayPlatformFees.String(),
		TodayDeliveryFees: s.TodayDeliveryFees.String(),
		TodayDelivered:    s.TodayDelivered,
		TodayCancelled:    s.TodayCancelled,
		WeekOrders:        s.WeekOrders,
		WeekRevenue:       s.WeekRevenue.String(),
		WeekDelivered:     s.WeekDelivered,
		MonthOrders:       s.MonthOrders,
		MonthRevenue:      s.MonthRevenue.String(),
		MonthDelivered:    s.MonthDelivered,
		LastUpdated:       s.LastUpdated,
	}
}
