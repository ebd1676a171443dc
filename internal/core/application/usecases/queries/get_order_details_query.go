// Package queries contains read-only operations for the delivery system.
// Query handlers bypass the domain aggregates and read projection rows
// straight from the store, following the CQRS split: commands go through
// aggregates and repositories, queries go through SQL.
package queries

import (
	"errors"
	"time"

	"deliverylink/internal/pkg/errs"
	"deliverylink/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery retrieves one order with its audit trail and timeline.
type GetOrderDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewGetOrderDetailsQuery creates a query for a single order's details.
func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidError("orderID")
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

// OrderID returns the target order's numeric id.
func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

// OrderDetailsResponse is the full read model for one order.
type OrderDetailsResponse struct {
	OrderSummary
	PickupInstructions  string
	DropoffInstructions string
	PackageQuantity     int
	PackageWeightKg     float64
	PackageValue        string
	IsFragile           bool
	EstimatedMinutes    int
	ProofType           string
	RecipientName       string
	DeliveryNotes       string
	History             []StatusChangeResponse
	Events              []TimelineEventResponse
}

// OrderSummary is the common list-view projection of an order.
type OrderSummary struct {
	OrderID             int64
	OrderNumber         string
	Status              string
	Priority            string
	PickupAddress       string
	DropoffAddress      string
	DropoffContactName  string
	DropoffContactPhone string
	PackageDescription  string
	PackageSize         string
	DeliveryFee         string
	PlatformFee         string
	TotalCost           string
	Currency            string
	EstimatedDistanceKm float64
	CreatedAt           time.Time
	DeliveredAt         *time.Time
}

// StatusChangeResponse is one audit trail entry.
type StatusChangeResponse struct {
	PreviousStatus *string
	NewStatus      string
	Reason         string
	ChangedAt      time.Time
}

// TimelineEventResponse is one public timeline entry.
type TimelineEventResponse struct {
	EventType   string
	Description string
	Latitude    *float64
	Longitude   *float64
	CreatedAt   time.Time
}
