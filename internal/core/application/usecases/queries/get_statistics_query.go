package queries

import (
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var (
	ErrGetDailyStatisticsQueryIsNotConstructed = errors.New(
		"GetDailyStatisticsQuery must be created via NewGetDailyStatisticsQuery constructor",
	)
	ErrGetBusinessStatisticsQueryIsNotConstructed = errors.New(
		"GetBusinessStatisticsQuery must be created via NewGetBusinessStatisticsQuery constructor",
	)
	ErrGetTodayStatisticsQueryIsNotConstructed = errors.New(
		"GetTodayStatisticsQuery must be created via NewGetTodayStatisticsQuery constructor",
	)
)

// GetDailyStatisticsQuery retrieves system-wide daily rollups for a date
// range, both dates inclusive.
type GetDailyStatisticsQuery struct {
	from time.Time
	to   time.Time

	guard guard.ConstructorGuard
}

// NewGetDailyStatisticsQuery creates a daily statistics range query.
func NewGetDailyStatisticsQuery(from, to time.Time) (GetDailyStatisticsQuery, error) {
	if to.Before(from) {
		return GetDailyStatisticsQuery{}, errs.NewValueIsInvalidError("to")
	}
	return GetDailyStatisticsQuery{from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDailyStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetDailyStatisticsQueryIsNotConstructed)
}

// From returns the range start.
func (q GetDailyStatisticsQuery) From() time.Time { return q.from }

// To returns the range end.
func (q GetDailyStatisticsQuery) To() time.Time { return q.to }

// GetBusinessStatisticsQuery retrieves one business's daily rollups for a
// date range, both dates inclusive.
type GetBusinessStatisticsQuery struct {
	business kernel.UUID
	from     time.Time
	to       time.Time

	guard guard.ConstructorGuard
}

// NewGetBusinessStatisticsQuery creates a business statistics range query.
func NewGetBusinessStatisticsQuery(business kernel.UUID, from, to time.Time) (GetBusinessStatisticsQuery, error) {
	if err := business.Validate(); err != nil {
		return GetBusinessStatisticsQuery{}, err
	}
	if to.Before(from) {
		return GetBusinessStatisticsQuery{}, errs.NewValueIsInvalidError("to")
	}
	return GetBusinessStatisticsQuery{business: business, from: from, to: to, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBusinessStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetBusinessStatisticsQueryIsNotConstructed)
}

// Business returns the business id.
func (q GetBusinessStatisticsQuery) Business() kernel.UUID { return q.business }

// From returns the range start.
func (q GetBusinessStatisticsQuery) From() time.Time { return q.from }

// To returns the range end.
func (q GetBusinessStatisticsQuery) To() time.Time { return q.to }

// GetTodayStatisticsQuery retrieves the system-wide rollup for the calendar
// date containing the provided instant.
type GetTodayStatisticsQuery struct {
	now time.Time

	guard guard.ConstructorGuard
}

// NewGetTodayStatisticsQuery creates a today statistics query.
func NewGetTodayStatisticsQuery(now time.Time) (GetTodayStatisticsQuery, error) {
	if now.IsZero() {
		return GetTodayStatisticsQuery{}, errs.NewValueIsRequiredError("now")
	}
	return GetTodayStatisticsQuery{now: now, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTodayStatisticsQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayStatisticsQueryIsNotConstructed)
}

// Now returns the reference instant.
func (q GetTodayStatisticsQuery) Now() time.Time { return q.now }

// StatisticsRowResponse is one rollup row. The same shape serves daily and
// business rows; the monetary names follow the daily row, and for business
// rows Revenue maps from total spend.
type StatisticsRowResponse struct {
	Date time.Time

	TotalOrders     int
	ConfirmedOrders int
	AssignedOrders  int
	PickedUpOrders  int
	InTransitOrders int
	DeliveredOrders int
	CancelledOrders int

	TotalRevenue      string
	PlatformFees      string
	DeliveryFees      string
	TotalPackageValue string

	UrgentOrders    int
	NormalOrders    int
	ScheduledOrders int

	FragilePackages int
	SmallPackages   int
	MediumPackages  int
	LargePackages   int
}
