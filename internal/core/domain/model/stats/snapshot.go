package stats

import (
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// SnapshotID is the well-known key of the single dashboard snapshot row.
// The snapshot is a system-wide singleton; exactly one row exists.
const SnapshotID int64 = 1

// DashboardSnapshot is the live dashboard row, fully recomputed from the
// order table on every lifecycle transition.
type DashboardSnapshot struct {
	ID int64

	ActiveOrders    int
	PendingOrders   int
	ConfirmedOrders int
	AssignedOrders  int
	PickedUpOrders  int
	InTransitOrders int

	TodayOrders       int
	TodayRevenue      kernel.Money
	TodayPlatformFees kernel.Money
	TodayDeliveryFees kernel.Money
	TodayDelivered    int
	TodayCancelled    int

	WeekOrders    int
	WeekRevenue   kernel.Money
	WeekDelivered int

	MonthOrders    int
	MonthRevenue   kernel.Money
	MonthDelivered int

	LastUpdated time.Time
}

// ComputeSnapshot rebuilds the snapshot from every live order. The today
// bucket covers the current UTC calendar date; week and month are rolling
// windows of 7 days and 1 calendar month ending at now.
//
// This is an O(orders) scan per transition, kept deliberately simple. The
// daily and business rows already accumulate incrementally and would serve
// as the basis for an incremental snapshot if the scan ever becomes the
// bottleneck.
func ComputeSnapshot(orders []*order.Order, now time.Time) *DashboardSnapshot {
	today := DayOf(now)
	weekAgo := now.AddDate(0, 0, -7)
	monthAgo := now.AddDate(0, -1, 0)

	s := &DashboardSnapshot{ID: SnapshotID, LastUpdated: now}

	for _, o := range orders {
		status := o.Status()
		if status.IsActive() {
			s.ActiveOrders++
		}

		switch status {
		case order.Pending:
			s.PendingOrders++
		case order.Confirmed:
			s.ConfirmedOrders++
		case order.Assigned:
			s.AssignedOrders++
		case order.PickedUp:
			s.PickedUpOrders++
		case order.InTransit:
			s.InTransitOrders++
		}

		createdAt := o.CreatedAt()

		if DayOf(createdAt).Equal(today) {
			s.TodayOrders++
			s.TodayRevenue = s.TodayRevenue.Add(o.TotalCost())
			s.TodayPlatformFees = s.TodayPlatformFees.Add(o.PlatformFee())
			s.TodayDeliveryFees = s.TodayDeliveryFees.Add(o.DeliveryFee())
			if status == order.Delivered {
				s.TodayDelivered++
			}
			if status == order.Cancelled {
				s.TodayCancelled++
			}
		}

		if !createdAt.Before(weekAgo) {
			s.WeekOrders++
			s.WeekRevenue = s.WeekRevenue.Add(o.TotalCost())
			if status == order.Delivered {
				s.WeekDelivered++
			}
		}

		if !createdAt.Before(monthAgo) {
			s.MonthOrders++
			s.MonthRevenue = s.MonthRevenue.Add(o.TotalCost())
			if status == order.Delivered {
				s.MonthDelivered++
			}
		}
	}

	return s
}
