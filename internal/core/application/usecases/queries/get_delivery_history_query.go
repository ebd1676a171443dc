package queries

import (
	"errors"
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// GetDeliveryHistoryQuery lists a driver's completed deliveries, newest
// first, together with the earnings they represent.
type GetDeliveryHistoryQuery struct {
	driverID kernel.UUID
	limit    int

	guard guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery creates a delivery history query. A zero limit
// falls back to the default page size.
func NewGetDeliveryHistoryQuery(driverID kernel.UUID, limit int) (GetDeliveryHistoryQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetDeliveryHistoryQuery{}, err
	}
	if limit == 0 {
		limit = defaultHistoryLimit
	}
	if limit < 0 || limit > maxHistoryLimit {
		return GetDeliveryHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxHistoryLimit)
	}

	return GetDeliveryHistoryQuery{driverID: driverID, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

// DriverID returns the driver whose history is requested.
func (q GetDeliveryHistoryQuery) DriverID() kernel.UUID { return q.driverID }

// Limit returns the page size.
func (q GetDeliveryHistoryQuery) Limit() int { return q.limit }

// DeliveredOrderResponse is one completed delivery in the history feed.
type DeliveredOrderResponse struct {
	OrderID        int64
	OrderNumber    string
	Priority       string
	PickupAddress  string
	DropoffAddress string
	DeliveryFee    string
	Currency       string
	DistanceKm     float64
	DeliveredAt    time.Time
}

// DeliveryHistoryResponse is the history page plus the driver's lifetime
// earnings total.
type DeliveryHistoryResponse struct {
	Deliveries    []DeliveredOrderResponse
	TotalEarnings string
}
