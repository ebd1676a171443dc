package queries

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrGetAvailableOrdersQueryIsNotConstructed = errors.New(
	"GetAvailableOrdersQuery must be created via NewGetAvailableOrdersQuery constructor",
)

const maxPageSize = 50

// GetAvailableOrdersQuery retrieves confirmed, driverless orders a driver
// can accept. When a driver id is supplied the feed is empty while that
// driver still holds an active delivery.
type GetAvailableOrdersQuery struct {
	driverID *kernel.UUID
	limit    int
	offset   int

	guard guard.ConstructorGuard
}

// NewGetAvailableOrdersQuery creates the query. A non-positive limit
// defaults to 20; limits above 50 are rejected.
func NewGetAvailableOrdersQuery(driverID *kernel.UUID, limit, offset int) (GetAvailableOrdersQuery, error) {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return GetAvailableOrdersQuery{}, err
		}
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > maxPageSize {
		return GetAvailableOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageSize)
	}
	if offset < 0 {
		return GetAvailableOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetAvailableOrdersQuery{
		driverID: driverID,
		limit:    limit,
		offset:   offset,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableOrdersQueryIsNotConstructed)
}

// DriverID returns the requesting driver, when known.
func (q GetAvailableOrdersQuery) DriverID() *kernel.UUID { return q.driverID }

// Limit returns the page size.
func (q GetAvailableOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q GetAvailableOrdersQuery) Offset() int { return q.offset }
