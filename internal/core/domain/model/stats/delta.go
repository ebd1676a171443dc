package stats

import (
	"time"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

// Delta is the typed increment applied to an accumulator row for one
// lifecycle event. Every update rule lives in the Apply methods of the row
// types, keyed off these fields; nothing is assembled at runtime.
type Delta struct {
	Date     time.Time
	Business kernel.UUID
	Status   order.Status

	// IsNewOrder marks the single placement event of an order. Only this
	// delta adds to order totals and monetary accumulators, so each order
	// contributes exactly once to them no matter how many transitions follow.
	IsNewOrder bool

	Priority     order.Priority
	PackageSize  order.PackageSize
	Fragile      bool
	TotalCost    kernel.Money
	PlatformFee  kernel.Money
	DeliveryFee  kernel.Money
	PackageValue kernel.Money
}

// NewOrderDelta builds the placement delta for a freshly placed order.
func NewOrderDelta(o *order.Order, day time.Time) Delta {
	d := deltaFromOrder(o, day)
	d.IsNewOrder = true
	return d
}

// TransitionDelta builds the status-only delta for a lifecycle transition.
func TransitionDelta(o *order.Order, day time.Time) Delta {
	return deltaFromOrder(o, day)
}

func deltaFromOrder(o *order.Order, day time.Time) Delta {
	return Delta{
		Date:         DayOf(day),
		Business:     o.Business(),
		Status:       o.Status(),
		Priority:     o.Priority(),
		PackageSize:  o.Package().Size(),
		Fragile:      o.Package().IsFragile(),
		TotalCost:    o.TotalCost(),
		PlatformFee:  o.PlatformFee(),
		DeliveryFee:  o.DeliveryFee(),
		PackageValue: o.Package().DeclaredValue(),
	}
}

// DayOf truncates a timestamp to its UTC calendar date, the key space for
// daily and business rows.
func DayOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
