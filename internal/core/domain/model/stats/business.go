package stats

import (
	"time"

	"deliverylink/internal/core/domain/model/kernel"
)

// BusinessStatistics is the per-business accumulator row for one calendar
// date. It mirrors DailyStatistics with the monetary fields named from the
// business's point of view.
type BusinessStatistics struct {
	ID       int64
	Business kernel.UUID
	Date     time.Time

	TotalOrders     int
	ConfirmedOrders int
	AssignedOrders  int
	PickedUpOrders  int
	InTransitOrders int
	DeliveredOrders int
	CancelledOrders int

	TotalSpent        kernel.Money
	TotalPlatformFees kernel.Money
	TotalDeliveryFees kernel.Money
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

// NewBusinessStatistics seeds an empty row for a (business, date) pair.
func NewBusinessStatistics(business kernel.UUID, date time.Time) *BusinessStatistics {
	return &BusinessStatistics{Business: business, Date: DayOf(date)}
}

// Apply folds one lifecycle event into the row.
func (s *BusinessStatistics) Apply(d Delta, now time.Time) {
	if d.IsNewOrder {
		s.TotalOrders++
		s.TotalSpent = s.TotalSpent.Add(d.TotalCost)
		s.TotalPlatformFees = s.TotalPlatformFees.Add(d.PlatformFee)
		s.TotalDeliveryFees = s.TotalDeliveryFees.Add(d.DeliveryFee)
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
