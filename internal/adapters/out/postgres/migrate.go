package postgres

import (
	"deliverylink/internal/adapters/out/postgres/orderrepo"
	"deliverylink/internal/adapters/out/postgres/otprepo"
	"deliverylink/internal/adapters/out/postgres/statsrepo"
	"deliverylink/internal/adapters/out/postgres/trackingrepo"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every persistence model.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&trackingrepo.StatusHistoryDTO{},
		&trackingrepo.TrackingEventDTO{},
		&otprepo.DeliveryCodeDTO{},
		&statsrepo.DailyStatisticsDTO{},
		&statsrepo.BusinessStatisticsDTO{},
		&statsrepo.DashboardSnapshotDTO{},
	)
}
