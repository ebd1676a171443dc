package statsrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/stats"
	"deliverylink/internal/pkg/errs"
)

// statusCountColumns are the accumulator columns both rollup tables share.
var statusCountColumns = []string{
	"total_orders", "confirmed_orders", "assigned_orders", "picked_up_orders",
	"in_transit_orders", "delivered_orders", "cancelled_orders",
	"urgent_orders", "normal_orders", "scheduled_orders",
	"fragile_packages", "small_packages", "medium_packages", "large_packages",
}

var dailyAccumColumns = append([]string{
	"total_revenue", "platform_fees", "delivery_fees", "total_package_value",
}, statusCountColumns...)

var businessAccumColumns = append([]string{
	"total_spent", "total_platform_fees", "total_delivery_fees", "total_package_value",
}, statusCountColumns...)

// additiveAssignments builds the ON CONFLICT SET list that adds the rejected
// insert's values onto the existing row, so a first-insert race never loses
// the loser's counters.
func additiveAssignments(table string, columns []string) clause.Set {
	set := make(clause.Set, 0, len(columns)+1)
	for _, col := range columns {
		set = append(set, clause.Assignment{
			Column: clause.Column{Name: col},
			Value:  gorm.Expr(table + "." + col + " + EXCLUDED." + col),
		})
	}
	set = append(set, clause.Assignment{
		Column: clause.Column{Name: "updated_at"},
		Value:  gorm.Expr("EXCLUDED.updated_at"),
	})
	return set
}

// GormStatsRepository implements ports.StatsRepository using GORM.
//
// The daily and business rows accumulate: handlers read them under a row
// lock, fold a delta in, and save. The snapshot row is overwritten whole.
type GormStatsRepository struct {
	db *gorm.DB
}

// NewGormStatsRepository creates a new GORM statistics repository.
func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

// GetDailyForUpdate retrieves and locks the daily row for a date.
func (r *GormStatsRepository) GetDailyForUpdate(ctx context.Context, date time.Time) (*stats.DailyStatistics, error) {
	var dto DailyStatisticsDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "date = ?", stats.DayOf(date)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("daily statistics", stats.DayOf(date).Format(time.DateOnly))
		}
		return nil, err
	}

	return dailyToDomain(dto)
}

// SaveDaily inserts or updates a daily row. Two transactions inserting the
// same date race on the unique index; the conflict clause folds the loser's
// counters into the winner's row instead of overwriting them.
func (r *GormStatsRepository) SaveDaily(ctx context.Context, row *stats.DailyStatistics) error {
	dto := dailyFromDomain(row)
	if dto.ID != 0 {
		return r.db.WithContext(ctx).Save(&dto).Error
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: additiveAssignments(dto.TableName(), dailyAccumColumns),
		}).
		Create(&dto).Error
}

// GetBusinessForUpdate retrieves and locks the row for a (business, date) pair.
func (r *GormStatsRepository) GetBusinessForUpdate(ctx context.Context, business kernel.UUID, date time.Time) (*stats.BusinessStatistics, error) {
	if err := business.Validate(); err != nil {
		return nil, err
	}

	var dto BusinessStatisticsDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "business_id = ? AND date = ?", business.Bytes(), stats.DayOf(date)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("business statistics", business.String())
		}
		return nil, err
	}

	return businessToDomain(dto)
}

// SaveBusiness inserts or updates a business row. Same accumulate-on-conflict
// discipline as SaveDaily, keyed on (business_id, date).
func (r *GormStatsRepository) SaveBusiness(ctx context.Context, row *stats.BusinessStatistics) error {
	dto := businessFromDomain(row)
	if dto.ID != 0 {
		return r.db.WithContext(ctx).Save(&dto).Error
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "business_id"}, {Name: "date"}},
			DoUpdates: additiveAssignments(dto.TableName(), businessAccumColumns),
		}).
		Create(&dto).Error
}

// SaveSnapshot upserts the singleton dashboard row.
func (r *GormStatsRepository) SaveSnapshot(ctx context.Context, snapshot *stats.DashboardSnapshot) error {
	dto := snapshotFromDomain(snapshot)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetSnapshot retrieves the singleton dashboard row.
func (r *GormStatsRepository) GetSnapshot(ctx context.Context) (*stats.DashboardSnapshot, error) {
	var dto DashboardSnapshotDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", stats.SnapshotID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("dashboard snapshot", stats.SnapshotID)
		}
		return nil, err
	}

	return snapshotToDomain(dto)
}

// GetDailyRange retrieves daily rows between two dates inclusive, oldest first.
func (r *GormStatsRepository) GetDailyRange(ctx context.Context, from, to time.Time) ([]*stats.DailyStatistics, error) {
	var dtos []DailyStatisticsDTO
	err := r.db.WithContext(ctx).
		Where("date BETWEEN ? AND ?", stats.DayOf(from), stats.DayOf(to)).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rows := make([]*stats.DailyStatistics, 0, len(dtos))
	for _, dto := range dtos {
		row, err := dailyToDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetBusinessRange retrieves a business's rows between two dates inclusive,
// oldest first.
func (r *GormStatsRepository) GetBusinessRange(ctx context.Context, business kernel.UUID, from, to time.Time) ([]*stats.BusinessStatistics, error) {
	if err := business.Validate(); err != nil {
		return nil, err
	}

	var dtos []BusinessStatisticsDTO
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND date BETWEEN ? AND ?", business.Bytes(), stats.DayOf(from), stats.DayOf(to)).
		Order("date").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	rows := make([]*stats.BusinessStatistics, 0, len(dtos))
	for _, dto := range dtos {
		row, err := businessToDomain(dto)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
