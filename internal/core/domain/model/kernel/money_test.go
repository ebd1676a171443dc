package kernel_test

import (
	"encoding/json"
	"testing"

	"deliverylink/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_two_decimal_strings", func(t *testing.T) {
		m, err := kernel.MoneyFromString("345.00")

		require.NoError(t, err)
		assert.Equal(t, int64(34500), m.Cents())
		assert.Equal(t, "345.00", m.String())
	})

	t.Run("parses_single_decimal", func(t *testing.T) {
		m, err := kernel.MoneyFromString("45.5")

		require.NoError(t, err)
		assert.Equal(t, int64(4550), m.Cents())
		assert.Equal(t, "45.50", m.String())
	})

	t.Run("parses_whole_amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("300")

		require.NoError(t, err)
		assert.Equal(t, int64(30000), m.Cents())
	})

	t.Run("parses_negative_amounts", func(t *testing.T) {
		m, err := kernel.MoneyFromString("-12.34")

		require.NoError(t, err)
		assert.Equal(t, int64(-1234), m.Cents())
		assert.Equal(t, "-12.34", m.String())
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		_, err := kernel.MoneyFromString("")
		require.Error(t, err)
	})

	t.Run("rejects_three_decimal_places", func(t *testing.T) {
		_, err := kernel.MoneyFromString("1.234")
		require.Error(t, err)
	})

	t.Run("rejects_non_numeric", func(t *testing.T) {
		_, err := kernel.MoneyFromString("abc")
		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		sum := kernel.NewMoneyFromCents(30000).Add(kernel.NewMoneyFromCents(4500))
		assert.Equal(t, "345.00", sum.String())
	})

	t.Run("percent_is_exact_for_platform_fee", func(t *testing.T) {
		fee := kernel.NewMoneyFromCents(30000).Percent(15)
		assert.Equal(t, "45.00", fee.String())

		urgentFee := kernel.NewMoneyFromCents(45000).Percent(15)
		assert.Equal(t, "67.50", urgentFee.String())
	})

	t.Run("percent_rounds_to_nearest_cent", func(t *testing.T) {
		fee := kernel.NewMoneyFromCents(101).Percent(15) // 15.15 cents
		assert.Equal(t, int64(15), fee.Cents())
	})

	t.Run("zero_value_is_zero_amount", func(t *testing.T) {
		var m kernel.Money
		assert.True(t, m.IsZero())
		assert.Equal(t, "0.00", m.String())
	})
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	type payload struct {
		Amount kernel.Money `json:"amount"`
	}

	raw, err := json.Marshal(payload{Amount: kernel.NewMoneyFromCents(34500)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"345.00"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(34500), decoded.Amount.Cents())
}
