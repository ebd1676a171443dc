package stats

import (
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// DailyStatistics is the system-wide accumulator row for one calendar date.
// Counters only grow; a row is never rewritten from scratch after creation.
type DailyStatistics struct {
	ID   int64
	Date time.Time

	TotalOrders      int
	ConfirmedOrders  int
	AssignedOrders   int
	PickedUpOrders   int
	InTransitOrders  int
	DeliveredOrders  int
	CancelledOrders  int

	TotalRevenue      kernel.Money
	PlatformFees      kernel.Money
	DeliveryFees      kernel.Money
	TotalPackageValue kernel.Money

	UrgentOrders    int
	NormalOrders    int
	ScheduledOrders int

	FragilePackages int
	SmallPackages   int
	MediumPackages  int
	LargePackages   int

	UpdatedAt time.Time
}

// NewDailyStatistics seeds an empty row for a date. The first Apply fills it.
func NewDailyStatistics(date time.Time) *DailyStatistics {
	return &DailyStatistics{Date: DayOf(date)}
}

// Apply folds one lifecycle event into the row.
func (s *DailyStatistics) Apply(d Delta, now time.Time) {
	if d.IsNewOrder {
		s.TotalOrders++
		s.TotalRevenue = s.TotalRevenue.Add(d.TotalCost)
		s.PlatformFees = s.PlatformFees.Add(d.PlatformFee)
		s.DeliveryFees = s.DeliveryFees.Add(d.DeliveryFee)
		s.TotalPackageValue = s.TotalPackageValue.Add(d.PackageValue)
		applyPriority(&s.UrgentOrders, &s.NormalOrders, &s.ScheduledOrders, d.Priority)
		applyPackage(&s.FragilePackages, &s.SmallPackages, &s.MediumPackages, &s.LargePackages, d)
	}

	applyStatus(
		&s.ConfirmedOrders, &s.AssignedOrders, &s.PickedUpOrders,
		&s.InTransitOrders, &s.DeliveredOrders, &s.CancelledOrders,
		d.Status,
	)
	s.UpdatedAt = now
}

func applyStatus(confirmed, assigned, pickedUp, inTransit, delivered, cancelled *int, status order.Status) {
	switch status {
	case order.Confirmed:
		*confirmed++
	case order.Assigned:
		*assigned++
	case order.PickedUp:
		*pickedUp++
	case order.InTransit:
		*inTransit++
	case order.Delivered:
		*delivered++
	case order.Cancelled:
		*cancelled++
	}
}

func applyPriority(urgent, normal, scheduled *int, priority order.Priority) {
	switch priority {
	case order.Urgent:
		*urgent++
	case order.Normal:
		*normal++
	case order.Scheduled:
		*scheduled++
	}
}

func applyPackage(fragile, small, medium, large *int, d Delta) {
	if d.Fragile {
		*fragile++
	}
	switch d.PackageSize {
	case order.SizeSmall:
		*small++
	case order.SizeMedium:
		*medium++
	case order.SizeLarge:
		*large++
	}
}
