package queries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/queries"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

func TestNewGetCustomerOrdersQuery(t *testing.T) {
	customerID := kernel.NewUUID()

	t.Run("defaults limit", func(t *testing.T) {
		q, err := queries.NewGetCustomerOrdersQuery(customerID, 0, 0)

		require.NoError(t, err)
		assert.Equal(t, 20, q.Limit())
		assert.Equal(t, 0, q.Offset())
	})

	t.Run("rejects oversized limit", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(customerID, 500, 0)
		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects negative offset", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(customerID, 10, -1)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects zero customer", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{}, 10, 0)
		assert.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var q queries.GetCustomerOrdersQuery
		assert.ErrorIs(t, q.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	})
}
