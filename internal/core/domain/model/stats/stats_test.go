package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func statOrder(t *testing.T, id int64, status order.Status, priority order.Priority, createdAt time.Time) *order.Order {
	t.Helper()

	number, err := kernel.OrderNumberFromString("DL-2026-000001")
	require.NoError(t, err)
	customer := kernel.NewUUID()

	sender, err := order.NewContact("sender", "254700000001")
	require.NoError(t, err)
	recipient, err := order.NewContact("recipient", "254700000002")
	require.NoError(t, err)
	pickup, err := order.NewWaypoint(sender, "pickup street 1", nil, "")
	require.NoError(t, err)
	dropoff, err := order.NewWaypoint(recipient, "dropoff street 2", nil, "")
	require.NoError(t, err)
	route, err := order.NewRoute(pickup, dropoff)
	require.NoError(t, err)

	pkg, err := order.NewPackageInfo("documents", order.SizeSmall, 1, 0.5, money(t, "200.00"), true)
	require.NoError(t, err)

	var driver *kernel.UUID
	if status != order.Pending && status != order.Confirmed {
		d := kernel.NewUUID()
		driver = &d
	}

	o, err := order.RestoreOrder(
		id, number, customer, customer, driver,
		status, priority, route, pkg,
		money(t, "300.00"), money(t, "45.00"), money(t, "345.00"), "KES",
		10.0, 25, 0, 0,
		createdAt, order.Milestones{}, nil,
	)
	require.NoError(t, err)
	return o
}

func TestDailyStatistics_Apply(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("placement delta fills totals and status counter", func(t *testing.T) {
		o := statOrder(t, 1, order.Confirmed, order.Urgent, now)
		row := NewDailyStatistics(now)

		row.Apply(NewOrderDelta(o, now), now)

		assert.Equal(t, 1, row.TotalOrders)
		assert.Equal(t, 1, row.ConfirmedOrders)
		assert.Equal(t, 1, row.UrgentOrders)
		assert.Equal(t, 0, row.NormalOrders)
		assert.Equal(t, 1, row.FragilePackages)
		assert.Equal(t, 1, row.SmallPackages)
		assert.Equal(t, "345.00", row.TotalRevenue.String())
		assert.Equal(t, "45.00", row.PlatformFees.String())
		assert.Equal(t, "300.00", row.DeliveryFees.String())
		assert.Equal(t, "200.00", row.TotalPackageValue.String())
	})

	t.Run("transition delta touches only the status counter", func(t *testing.T) {
		o := statOrder(t, 1, order.Confirmed, order.Normal, now)
		row := NewDailyStatistics(now)
		row.Apply(NewOrderDelta(o, now), now)

		delivered := statOrder(t, 1, order.Delivered, order.Normal, now)
		row.Apply(TransitionDelta(delivered, now), now)

		assert.Equal(t, 1, row.TotalOrders, "totals accumulate once per order")
		assert.Equal(t, 1, row.DeliveredOrders)
		assert.Equal(t, "345.00", row.TotalRevenue.String(), "revenue accumulates once per order")
	})

	t.Run("orders accumulate across placements", func(t *testing.T) {
		row := NewDailyStatistics(now)
		row.Apply(NewOrderDelta(statOrder(t, 1, order.Confirmed, order.Urgent, now), now), now)
		row.Apply(NewOrderDelta(statOrder(t, 2, order.Confirmed, order.Normal, now), now), now)

		assert.Equal(t, 2, row.TotalOrders)
		assert.Equal(t, 2, row.ConfirmedOrders)
		assert.Equal(t, 1, row.UrgentOrders)
		assert.Equal(t, 1, row.NormalOrders)
		assert.Equal(t, "690.00", row.TotalRevenue.String())
	})
}

func TestBusinessStatistics_Apply(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	o := statOrder(t, 1, order.Confirmed, order.Scheduled, now)

	row := NewBusinessStatistics(o.Business(), now)
	row.Apply(NewOrderDelta(o, now), now)

	assert.True(t, row.Business.IsEqual(o.Business()))
	assert.Equal(t, 1, row.TotalOrders)
	assert.Equal(t, 1, row.ScheduledOrders)
	assert.Equal(t, "345.00", row.TotalSpent.String())
	assert.Equal(t, "45.00", row.TotalPlatformFees.String())

	cancelled := statOrder(t, 1, order.Cancelled, order.Scheduled, now)
	row.Apply(TransitionDelta(cancelled, now), now)
	assert.Equal(t, 1, row.CancelledOrders)
	assert.Equal(t, 1, row.TotalOrders)
}

func TestDayOf(t *testing.T) {
	late := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), DayOf(late))
}

func TestComputeSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	tenDaysAgo := now.AddDate(0, 0, -10)
	twoMonthsAgo := now.AddDate(0, -2, 0)

	orders := []*order.Order{
		statOrder(t, 1, order.Confirmed, order.Normal, now),
		statOrder(t, 2, order.Assigned, order.Normal, now),
		statOrder(t, 3, order.Delivered, order.Urgent, now),
		statOrder(t, 4, order.Cancelled, order.Normal, now),
		statOrder(t, 5, order.InTransit, order.Normal, yesterday),
		statOrder(t, 6, order.Delivered, order.Normal, tenDaysAgo),
		statOrder(t, 7, order.Delivered, order.Normal, twoMonthsAgo),
	}

	s := ComputeSnapshot(orders, now)

	assert.Equal(t, SnapshotID, s.ID)
	assert.Equal(t, 3, s.ActiveOrders)
	assert.Equal(t, 0, s.PendingOrders)
	assert.Equal(t, 1, s.ConfirmedOrders)
	assert.Equal(t, 1, s.AssignedOrders)
	assert.Equal(t, 1, s.InTransitOrders)

	assert.Equal(t, 4, s.TodayOrders)
	assert.Equal(t, 1, s.TodayDelivered)
	assert.Equal(t, 1, s.TodayCancelled)
	assert.Equal(t, "1380.00", s.TodayRevenue.String())
	assert.Equal(t, "180.00", s.TodayPlatformFees.String())

	assert.Equal(t, 5, s.WeekOrders)
	assert.Equal(t, 1, s.WeekDelivered)
	assert.Equal(t, "1725.00", s.WeekRevenue.String())

	assert.Equal(t, 6, s.MonthOrders)
	assert.Equal(t, 2, s.MonthDelivered)
	assert.Equal(t, "2070.00", s.MonthRevenue.String())

	assert.Equal(t, now, s.LastUpdated)
}

func TestComputeSnapshot_Empty(t *testing.T) {
	s := ComputeSnapshot(nil, time.Now())
	assert.Equal(t, 0, s.ActiveOrders)
	assert.True(t, s.TodayRevenue.IsZero())
}
