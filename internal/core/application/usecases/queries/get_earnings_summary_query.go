package queries

import (
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrGetEarningsSummaryQueryIsNotConstructed = errors.New(
	"GetEarningsSummaryQuery must be created via NewGetEarningsSummaryQuery constructor",
)

// EarningsPeriod selects the window an earnings summary covers.
type EarningsPeriod string

const (
	PeriodToday EarningsPeriod = "today"
	PeriodWeek  EarningsPeriod = "week"
	PeriodMonth EarningsPeriod = "month"
	PeriodAll   EarningsPeriod = "all"
)

// GetEarningsSummaryQuery aggregates a driver's completed deliveries over
// a period ending now.
type GetEarningsSummaryQuery struct {
	driverID kernel.UUID
	period   EarningsPeriod
	now      time.Time

	guard guard.ConstructorGuard
}

// NewGetEarningsSummaryQuery creates an earnings summary query. An empty
// period defaults to the full history.
func NewGetEarningsSummaryQuery(driverID kernel.UUID, period EarningsPeriod, now time.Time) (GetEarningsSummaryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetEarningsSummaryQuery{}, err
	}
	if now.IsZero() {
		return GetEarningsSummaryQuery{}, errs.NewValueIsRequiredError("now")
	}

	switch period {
	case "":
		period = PeriodAll
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodAll:
	default:
		return GetEarningsSummaryQuery{}, errs.NewValueIsInvalidError("period")
	}

	return GetEarningsSummaryQuery{
		driverID: driverID,
		period:   period,
		now:      now,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetEarningsSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsSummaryQueryIsNotConstructed)
}

// DriverID returns the driver whose earnings are summarized.
func (q GetEarningsSummaryQuery) DriverID() kernel.UUID { return q.driverID }

// Period returns the requested window.
func (q GetEarningsSummaryQuery) Period() EarningsPeriod { return q.period }

// Now returns the reference instant the window ends at.
func (q GetEarningsSummaryQuery) Now() time.Time { return q.now }

// EarningsSummaryResponse is the aggregated earnings view for one driver.
type EarningsSummaryResponse struct {
	Period                     string
	TotalDeliveries            int
	TotalEarnings              string
	UrgentDeliveries           int
	UrgentEarnings             string
	AverageEarningsPerDelivery string
	Currency                   string
}
