package queries

import (
	"errors"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrGetCustomerOrdersQueryIsNotConstructed = errors.New(
	"GetCustomerOrdersQuery must be created via NewGetCustomerOrdersQuery constructor",
)

const (
	defaultCustomerOrdersLimit = 20
	maxCustomerOrdersLimit     = 100
)

// GetCustomerOrdersQuery retrieves a customer's orders, newest first.
type GetCustomerOrdersQuery struct {
	customerID kernel.UUID
	limit      int
	offset     int

	guard guard.ConstructorGuard
}

// NewGetCustomerOrdersQuery creates the query for a customer's order list.
// A zero limit defaults to 20; the limit is capped at 100.
func NewGetCustomerOrdersQuery(customerID kernel.UUID, limit, offset int) (GetCustomerOrdersQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerOrdersQuery{}, err
	}

	if limit == 0 {
		limit = defaultCustomerOrdersLimit
	}
	if limit < 0 || limit > maxCustomerOrdersLimit {
		return GetCustomerOrdersQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxCustomerOrdersLimit)
	}
	if offset < 0 {
		return GetCustomerOrdersQuery{}, errs.NewValueIsInvalidError("offset")
	}

	return GetCustomerOrdersQuery{
		customerID: customerID,
		limit:      limit,
		offset:     offset,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer's id.
func (q GetCustomerOrdersQuery) CustomerID() kernel.UUID { return q.customerID }

// Limit returns the page size.
func (q GetCustomerOrdersQuery) Limit() int { return q.limit }

// Offset returns the page start.
func (q GetCustomerOrdersQuery) Offset() int { return q.offset }
