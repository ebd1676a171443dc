package services

import (
	"math"

	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

const (
	baseFeeCents     int64 = 100_00
	perKmRateCents   int64 = 20_00
	urgentMultiplier       = 1.5
	platformFeeRate  int64 = 15
)

// Fees is the pricing triple fixed at order placement.
type Fees struct {
	DeliveryFee kernel.Money
	PlatformFee kernel.Money
	TotalCost   kernel.Money
}

// FeeCalculator prices a delivery from distance and priority.
//
// Pricing is deterministic. The delivery fee starts at a base amount plus a
// per-kilometre rate, urgent orders pay a 1.5 multiplier applied before the
// fee is rounded to a whole amount, and the platform takes 15% on top. Any
// audit recomputation must run through this same calculator so stored and
// recomputed fees can never disagree.
type FeeCalculator struct{}

// NewFeeCalculator creates a new FeeCalculator instance.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// Calculate prices a delivery. Distance must be positive; priority must be a
// known priority value.
func (FeeCalculator) Calculate(distanceKm float64, priority order.Priority) (Fees, error) {
	if distanceKm <= 0 {
		return Fees{}, errs.NewValueIsInvalidError("distanceKm")
	}
	if err := priority.Validate(); err != nil {
		return Fees{}, err
	}

	raw := float64(baseFeeCents) + distanceKm*float64(perKmRateCents)
	if priority == order.Urgent {
		raw *= urgentMultiplier
	}

	// Rounded to a whole currency unit, so the cent part is always zero.
	deliveryFee := kernel.NewMoneyFromCents(int64(math.Round(raw/100)) * 100)
	platformFee := deliveryFee.Percent(platformFeeRate)
	totalCost := deliveryFee.Add(platformFee)

	return Fees{
		DeliveryFee: deliveryFee,
		PlatformFee: platformFee,
		TotalCost:   totalCost,
	}, nil
}
