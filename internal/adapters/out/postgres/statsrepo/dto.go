// Package statsrepo persists the three statistics rollups: the system-wide
// daily row, the per-business daily row, and the singleton dashboard
// snapshot. Monetary counters are stored as numeric(14,2).
package statsrepo

import (
	"time"

	"github.com/google/uuid"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/stats"
)

// DailyStatisticsDTO is the system-wide accumulator row for one date.
type DailyStatisticsDTO struct {
	ID   int64     `gorm:"primaryKey;autoIncrement"`
	Date time.Time `gorm:"uniqueIndex;type:date"`

	TotalOrders     int `gorm:"column:total_orders"`
	ConfirmedOrders int `gorm:"column:confirmed_orders"`
	AssignedOrders  int `gorm:"column:assigned_orders"`
	PickedUpOrders  int `gorm:"column:picked_up_orders"`
	InTransitOrders int `gorm:"column:in_transit_orders"`
	DeliveredOrders int `gorm:"column:delivered_orders"`
	CancelledOrders int `gorm:"column:cancelled_orders"`

	TotalRevenue      string `gorm:"column:total_revenue;type:numeric(14,2)"`
	PlatformFees      string `gorm:"column:platform_fees;type:numeric(14,2)"`
	DeliveryFees      string `gorm:"column:delivery_fees;type:numeric(14,2)"`
	TotalPackageValue string `gorm:"column:total_package_value;type:numeric(14,2)"`

	UrgentOrders    int `gorm:"column:urgent_orders"`
	NormalOrders    int `gorm:"column:normal_orders"`
	ScheduledOrders int `gorm:"column:scheduled_orders"`

	FragilePackages int `gorm:"column:fragile_packages"`
	SmallPackages   int `gorm:"column:small_packages"`
	MediumPackages  int `gorm:"column:medium_packages"`
	LargePackages   int `gorm:"column:large_packages"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides GORM's default naming to use "daily_statistics".
func (DailyStatisticsDTO) TableName() string {
	return "daily_statistics"
}

// BusinessStatisticsDTO is the per-business accumulator row for one date.
type BusinessStatisticsDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	BusinessID uuid.UUID `gorm:"type:uuid;column:business_id;uniqueIndex:idx_business_date"`
	Date       time.Time `gorm:"uniqueIndex:idx_business_date;type:date"`

	TotalOrders     int `gorm:"column:total_orders"`
	ConfirmedOrders int `gorm:"column:confirmed_orders"`
	AssignedOrders  int `gorm:"column:assigned_orders"`
	PickedUpOrders  int `gorm:"column:picked_up_orders"`
	InTransitOrders int `gorm:"column:in_transit_orders"`
	DeliveredOrders int `gorm:"column:delivered_orders"`
	CancelledOrders int `gorm:"column:cancelled_orders"`

	TotalSpent        string `gorm:"column:total_spent;type:numeric(14,2)"`
	TotalPlatformFees string `gorm:"column:total_platform_fees;type:numeric(14,2)"`
	TotalDeliveryFees string `gorm:"column:total_delivery_fees;type:numeric(14,2)"`
	TotalPackageValue string `gorm:"column:total_package_value;type:numeric(14,2)"`

	UrgentOrders    int `gorm:"column:urgent_orders"`
	NormalOrders    int `gorm:"column:normal_orders"`
	ScheduledOrders int `gorm:"column:scheduled_orders"`

	FragilePackages int `gorm:"column:fragile_packages"`
	SmallPackages   int `gorm:"column:small_packages"`
	MediumPackages  int `gorm:"column:medium_packages"`
	LargePackages   int `gorm:"column:large_packages"`

	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides GORM's default naming to use "business_statistics".
func (BusinessStatisticsDTO) TableName() string {
	return "business_statistics"
}

// DashboardSnapshotDTO is the singleton live dashboard row.
type DashboardSnapshotDTO struct {
	ID int64 `gorm:"primaryKey"`

	ActiveOrders    int `gorm:"column:active_orders"`
	PendingOrders   int `gorm:"column:pending_orders"`
	ConfirmedOrders int `gorm:"column:confirmed_orders"`
	AssignedOrders  int `gorm:"column:assigned_orders"`
	PickedUpOrders  int `gorm:"column:picked_up_orders"`
	InTransitOrders int `gorm:"column:in_transit_orders"`

	TodayOrders       int    `gorm:"column:today_orders"`
	TodayRevenue      string `gorm:"column:today_revenue;type:numeric(14,2)"`
	TodayPlatformFees string `gorm:"column:today_platform_fees;type:numeric(14,2)"`
	TodayDeliveryFees string `gorm:"column:today_delivery_fees;type:numeric(14,2)"`
	TodayDelivered    int    `gorm:"column:today_delivered"`
	TodayCancelled    int    `gorm:"column:today_cancelled"`

	WeekOrders    int    `gorm:"column:week_orders"`
	WeekRevenue   string `gorm:"column:week_revenue;type:numeric(14,2)"`
	WeekDelivered int    `gorm:"column:week_delivered"`

	MonthOrders    int    `gorm:"column:month_orders"`
	MonthRevenue   string `gorm:"column:month_revenue;type:numeric(14,2)"`
	MonthDelivered int    `gorm:"column:month_delivered"`

	LastUpdated time.Time `gorm:"column:last_updated"`
}

// TableName overrides GORM's default naming to use "dashboard_snapshots".
func (DashboardSnapshotDTO) TableName() string {
	return "dashboard_snapshots"
}

func dailyFromDomain(row *stats.DailyStatistics) DailyStatisticsDTO {
	return DailyStatisticsDTO{
		ID:   row.ID,
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

		UpdatedAt: row.UpdatedAt,
	}
}

func dailyToDomain(dto DailyStatisticsDTO) (*stats.DailyStatistics, error) {
	totalRevenue, err := kernel.MoneyFromString(dto.TotalRevenue)
	if err != nil {
		return nil, err
	}
	platformFees, err := kernel.MoneyFromString(dto.PlatformFees)
	if err != nil {
		return nil, err
	}
	deliveryFees, err := kernel.MoneyFromString(dto.DeliveryFees)
	if err != nil {
		return nil, err
	}
	packageValue, err := kernel.MoneyFromString(dto.TotalPackageValue)
	if err != nil {
		return nil, err
	}

	return &stats.DailyStatistics{
		ID:   dto.ID,
		Date: dto.Date,

		TotalOrders:     dto.TotalOrders,
		ConfirmedOrders: dto.ConfirmedOrders,
		AssignedOrders:  dto.AssignedOrders,
		PickedUpOrders:  dto.PickedUpOrders,
		InTransitOrders: dto.InTransitOrders,
		DeliveredOrders: dto.DeliveredOrders,
		CancelledOrders: dto.CancelledOrders,

		TotalRevenue:      totalRevenue,
		PlatformFees:      platformFees,
		DeliveryFees:      deliveryFees,
		TotalPackageValue: packageValue,

		UrgentOrders:    dto.UrgentOrders,
		NormalOrders:    dto.NormalOrders,
		ScheduledOrders: dto.ScheduledOrders,

		FragilePackages: dto.FragilePackages,
		SmallPackages:   dto.SmallPackages,
		MediumPackages:  dto.MediumPackages,
		LargePackages:   dto.LargePackages,

		UpdatedAt: dto.UpdatedAt,
	}, nil
}

func businessFromDomain(row *stats.BusinessStatistics) BusinessStatisticsDTO {
	return BusinessStatisticsDTO{
		ID:         row.ID,
		BusinessID: row.Business.Bytes(),
		Date:       row.Date,

		TotalOrders:     row.TotalOrders,
		ConfirmedOrders: row.ConfirmedOrders,
		AssignedOrders:  row.AssignedOrders,
		PickedUpOrders:  row.PickedUpOrders,
		InTransitOrders: row.InTransitOrders,
		DeliveredOrders: row.DeliveredOrders,
		CancelledOrders: row.CancelledOrders,

		TotalSpent:        row.TotalSpent.String(),
		TotalPlatformFees: row.TotalPlatformFees.String(),
		TotalDeliveryFees: row.TotalDeliveryFees.String(),
		TotalPackageValue: row.TotalPackageValue.String(),

		UrgentOrders:    row.UrgentOrders,
		NormalOrders:    row.NormalOrders,
		ScheduledOrders: row.ScheduledOrders,

		FragilePackages: row.FragilePackages,
		SmallPackages:   row.SmallPackages,
		MediumPackages:  row.MediumPackages,
		LargePackages:   row.LargePackages,

		UpdatedAt: row.UpdatedAt,
	}
}

func businessToDomain(dto BusinessStatisticsDTO) (*stats.BusinessStatistics, error) {
	business, err := kernel.UUIDFromBytes(dto.BusinessID[:])
	if err != nil {
		return nil, err
	}

	totalSpent, err := kernel.MoneyFromString(dto.TotalSpent)
	if err != nil {
		return nil, err
	}
	platformFees, err := kernel.MoneyFromString(dto.TotalPlatformFees)
	if err != nil {
		return nil, err
	}
	deliveryFees, err := kernel.MoneyFromString(dto.TotalDeliveryFees)
	if err != nil {
		return nil, err
	}
	packageValue, err := kernel.MoneyFromString(dto.TotalPackageValue)
	if err != nil {
		return nil, err
	}

	return &stats.BusinessStatistics{
		ID:       dto.ID,
		Business: business,
		Date:     dto.Date,

		TotalOrders:     dto.TotalOrders,
		ConfirmedOrders: dto.ConfirmedOrders,
		AssignedOrders:  dto.AssignedOrders,
		PickedUpOrders:  dto.PickedUpOrders,
		InTransitOrders: dto.InTransitOrders,
		DeliveredOrders: dto.DeliveredOrders,
		CancelledOrders: dto.CancelledOrders,

		TotalSpent:        totalSpent,
		TotalPlatformFees: platformFees,
		TotalDeliveryFees: deliveryFees,
		TotalPackageValue: packageValue,

		UrgentOrders:    dto.UrgentOrders,
		NormalOrders:    dto.NormalOrders,
		ScheduledOrders: dto.ScheduledOrders,

		FragilePackages: dto.FragilePackages,
		SmallPackages:   dto.SmallPackages,
		MediumPackages:  dto.MediumPackages,
		LargePackages:   dto.LargePackages,

		UpdatedAt: dto.UpdatedAt,
	}, nil
}

func snapshotFromDomain(s *stats.DashboardSnapshot) DashboardSnapshotDTO {
	return DashboardSnapshotDTO{
		ID: s.ID,

		ActiveOrders:    s.ActiveOrders,
		PendingOrders:   s.PendingOrders,
		ConfirmedOrders: s.ConfirmedOrders,
		AssignedOrders:  s.AssignedOrders,
		PickedUpOrders:  s.PickedUpOrders,
		InTransitOrders: s.InTransitOrders,

		TodayOrders:       s.TodayOrders,
		TodayRevenue:      s.TodayRevenue.String(),
		TodayPlatformFees: s.TodayPlatformFees.String(),
		TodayDeliveryFees: s.TodayDeliveryFees.String(),
		TodayDelivered:    s.TodayDelivered,
		TodayCancelled:    s.TodayCancelled,

		WeekOrders:    s.WeekOrders,
		WeekRevenue:   s.WeekRevenue.String(),
		WeekDelivered: s.WeekDelivered,

		MonthOrders:    s.MonthOrders,
		MonthRevenue:   s.MonthRevenue.String(),
		MonthDelivered: s.MonthDelivered,

		LastUpdated: s.LastUpdated,
	}
}

func snapshotToDomain(dto DashboardSnapshotDTO) (*stats.DashboardSnapshot, error) {
	todayRevenue, err := kernel.MoneyFromString(dto.TodayRevenue)
	if err != nil {
		return nil, err
	}
	todayPlatformFees, err := kernel.MoneyFromString(dto.TodayPlatformFees)
	if err != nil {
		return nil, err
	}
	todayDeliveryFees, err := kernel.MoneyFromString(dto.TodayDeliveryFees)
	if err != nil {
		return nil, err
	}
	weekRevenue, err := kernel.MoneyFromString(dto.WeekRevenue)
	if err != nil {
		return nil, err
	}
	monthRevenue, err := kernel.MoneyFromString(dto.MonthRevenue)
	if err != nil {
		return nil, err
	}

	return &stats.DashboardSnapshot{
		ID: dto.ID,

		ActiveOrders:    dto.ActiveOrders,
		PendingOrders:   dto.PendingOrders,
		ConfirmedOrders: dto.ConfirmedOrders,
		AssignedOrders:  dto.AssignedOrders,
		PickedUpOrders:  dto.PickedUpOrders,
		InTransitOrders: dto.InTransitOrders,

		TodayOrders:       dto.TodayOrders,
		TodayRevenue:      todayRevenue,
		TodayPlatformFees: todayPlatformFees,
		TodayDeliveryFees: todayDeliveryFees,
		TodayDelivered:    dto.TodayDelivered,
		TodayCancelled:    dto.TodayCancelled,

		WeekOrders:    dto.WeekOrders,
		WeekRevenue:   weekRevenue,
		WeekDelivered: dto.WeekDelivered,

		MonthOrders:    dto.MonthOrders,
		MonthRevenue:   monthRevenue,
		MonthDelivered: dto.MonthDelivered,

		LastUpdated: dto.LastUpdated,
	}, nil
}
