package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

func TestFeeCalculator_Calculate(t *testing.T) {
	calc := NewFeeCalculator()

	tests := []struct {
		name            string
		distanceKm      float64
		priority        order.Priority
		wantDeliveryFee string
		wantPlatformFee string
		wantTotalCost   string
	}{
		{"10km normal", 10, order.Normal, "300.00", "45.00", "345.00"},
		{"10km urgent", 10, order.Urgent, "450.00", "67.50", "517.50"},
		{"10km scheduled prices like normal", 10, order.Scheduled, "300.00", "45.00", "345.00"},
		{"5km urgent", 5, order.Urgent, "300.00", "45.00", "345.00"},
		{"fractional distance rounds the fee", 2.3, order.Normal, "146.00", "21.90", "167.90"},
		{"urgency applies before rounding", 2.3, order.Urgent, "219.00", "32.85", "251.85"},
		{"short hop", 0.5, order.Normal, "110.00", "16.50", "126.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fees, err := calc.Calculate(tt.distanceKm, tt.priority)
			require.NoError(t, err)

			assert.Equal(t, tt.wantDeliveryFee, fees.DeliveryFee.String())
			assert.Equal(t, tt.wantPlatformFee, fees.PlatformFee.String())
			assert.Equal(t, tt.wantTotalCost, fees.TotalCost.String())
			assert.Equal(t, fees.DeliveryFee.Add(fees.PlatformFee), fees.TotalCost)
		})
	}

	t.Run("is deterministic", func(t *testing.T) {
		first, err := calc.Calculate(13.7, order.Urgent)
		require.NoError(t, err)
		second, err := calc.Calculate(13.7, order.Urgent)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("rejects non positive distance", func(t *testing.T) {
		_, err := calc.Calculate(0, order.Normal)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = calc.Calculate(-3, order.Normal)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects unknown priority", func(t *testing.T) {
		_, err := calc.Calculate(10, order.Priority("express"))
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
