package ports

import (
	"context"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/stats"
)

// StatsRepository defines the persistence contract for the statistics
// rollups. The ForUpdate getters lock the row they return so concurrent
// transitions serialize their read-modify-write accumulation.
type StatsRepository interface {
	// GetDailyForUpdate retrieves and locks the daily row for a date.
	// Returns a not-found error when no row exists for that date yet.
	GetDailyForUpdate(ctx context.Context, date time.Time) (*stats.DailyStatistics, error)

	// SaveDaily inserts or updates a daily row.
	SaveDaily(ctx context.Context, row *stats.DailyStatistics) error

	// GetBusinessForUpdate retrieves and locks the row for a
	// (business, date) pair. Returns a not-found error when absent.
	GetBusinessForUpdate(ctx context.Context, business kernel.UUID, date time.Time) (*stats.BusinessStatistics, error)

	// SaveBusiness inserts or updates a business row.
	SaveBusiness(ctx context.Context, row *stats.BusinessStatistics) error

	// SaveSnapshot upserts the singleton dashboard row by its well-known key.
	SaveSnapshot(ctx context.Context, snapshot *stats.DashboardSnapshot) error

	// GetSnapshot retrieves the singleton dashboard row.
	GetSnapshot(ctx context.Context) (*stats.DashboardSnapshot, error)

	// GetDailyRange retrieves daily rows between two dates inclusive,
	// oldest first.
	GetDailyRange(ctx context.Context, from, to time.Time) ([]*stats.DailyStatistics, error)

	// GetBusinessRange retrieves a business's rows between two dates
	// inclusive, oldest first.
	GetBusinessRange(ctx context.Context, business kernel.UUID, from, to time.Time) ([]*stats.BusinessStatistics, error)
}
