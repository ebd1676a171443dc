package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("defaults currency to KES", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), testRoute(t), testPackage(t), order.Normal, "")
		require.NoError(t, err)
		assert.Equal(t, "KES", cmd.Currency())
		assert.NoError(t, cmd.Validate())
	})

	t.Run("keeps explicit currency", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), testRoute(t), testPackage(t), order.Urgent, "USD")
		require.NoError(t, err)
		assert.Equal(t, "USD", cmd.Currency())
	})

	t.Run("rejects invalid customer id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.UUID{}, testRoute(t), testPackage(t), order.Normal, "")
		require.Error(t, err)
	})

	t.Run("rejects unconstructed route", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), order.Route{}, testPackage(t), order.Normal, "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		assert.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}

func TestNewAcceptOrderCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAcceptOrderCommand(7, kernel.NewUUID())
		require.NoError(t, err)
		assert.NoError(t, cmd.Validate())
		assert.Equal(t, int64(7), cmd.OrderID())
	})

	t.Run("rejects non positive order id", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand(0, kernel.NewUUID())
		require.Error(t, err)
	})

	t.Run("rejects invalid driver id", func(t *testing.T) {
		_, err := commands.NewAcceptOrderCommand(7, kernel.UUID{})
		require.Error(t, err)
	})
}
