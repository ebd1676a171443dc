package order

import (
	"deliverylink/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with a strict, irreversible progression:
//
//	pending ──> confirmed ──> assigned ──> picked_up ──> in_transit ──> delivered
//	   │            │            │
//	   └────────────┴────────────┴──> cancelled
//
// failed is a reserved terminal exit not reachable through customer actions.
// Statuses are persisted verbatim as strings.
type Status string

const (
	// Pending is the nominal initial status. The current placement flow
	// creates orders directly in Confirmed, so Pending only appears for
	// orders staged by external imports.
	Pending Status = "pending"

	// Confirmed means the order is placed, priced, and waiting for a driver.
	Confirmed Status = "confirmed"

	// Assigned means a driver has accepted the order.
	Assigned Status = "assigned"

	// PickedUp means the driver has collected the package.
	PickedUp Status = "picked_up"

	// InTransit means the package is on its way to the dropoff.
	InTransit Status = "in_transit"

	// Delivered is the successful terminal status, reached only through
	// delivery code verification.
	Delivered Status = "delivered"

	// Cancelled is a terminal exit reachable from pending, confirmed, and
	// assigned only.
	Cancelled Status = "cancelled"

	// Failed is a reserved terminal failure exit.
	Failed Status = "failed"
)

// getValidStatuses returns the set of statuses accepted from external sources.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:   {},
		Confirmed: {},
		Assigned:  {},
		PickedUp:  {},
		InTransit: {},
		Delivered: {},
		Cancelled: {},
		Failed:    {},
	}
}

// Validate checks if the Status value is one of the known lifecycle states.
// Used when reconstructing orders from persistence or parsing API input.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the persisted form of the status.
func (s Status) String() string {
	return string(s)
}

// IsActive reports whether the order still needs work from the platform:
// anything before the delivered/cancelled/failed terminal exits.
func (s Status) IsActive() bool {
	switch s {
	case Pending, Confirmed, Assigned, PickedUp, InTransit:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Failed
}

// Accept transitions the status to Assigned.
// Only a confirmed order can be accepted by a driver.
func (s Status) Accept() (Status, error) {
	if s != Confirmed {
		return "", errs.NewInvalidStateError("accept", string(s))
	}
	return Assigned, nil
}

// PickUp transitions the status to PickedUp.
// Only an assigned order can be picked up.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return "", errs.NewInvalidStateError("pick up", string(s))
	}
	return PickedUp, nil
}

// Transit transitions the status to InTransit.
// Only a picked-up order can go in transit.
func (s Status) Transit() (Status, error) {
	if s != PickedUp {
		return "", errs.NewInvalidStateError("mark in transit", string(s))
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered.
// Delivery closes from either picked_up or in_transit: short hops may never
// report the in_transit leg.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp && s != InTransit {
		return "", errs.NewInvalidStateError("deliver", string(s))
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
// Cancellation is allowed only before the package is picked up.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Confirmed && s != Assigned {
		return "", errs.NewInvalidStateError("cancel", string(s))
	}
	return Cancelled, nil
}

// CanIssueDeliveryCode reports whether a delivery confirmation code may be
// issued: only while the package is with the driver.
func (s Status) CanIssueDeliveryCode() bool {
	return s == PickedUp || s == InTransit
}

// CanReportIssue reports whether an issue may be reported against the order:
// any status where a driver is responsible for the package.
func (s Status) CanReportIssue() bool {
	return s == Assigned || s == PickedUp || s == InTransit
}
