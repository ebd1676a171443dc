package queries

import (
	"errors"
	"time"

	"deliverylink/internal/pkg/guard"
)

var ErrGetDashboardQueryIsNotConstructed = errors.New(
	"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
)

// GetDashboardQuery retrieves the live dashboard snapshot.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDashboardQuery creates a parameterless dashboard query.
func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// DashboardResponse is the live dashboard read model. Monetary fields are
// two-decimal strings.
type DashboardResponse struct {
	ActiveOrders    int
	PendingOrders   int
	ConfirmedOrders int
	AssignedOrders  int
	PickedUpOrders  int
	InTransitOrders int

	TodayOrders       int
	TodayRevenue      string
	TodayPlatformFees string
	TodayDeliveryFees string
	TodayDelivered    int
	TodayCancelled    int

	WeekOrders    int
	WeekRevenue   string
	WeekDelivered int

	MonthOrders    int
	MonthRevenue   string
	MonthDelivered int

	LastUpdated time.Time
}
