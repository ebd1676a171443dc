package queries_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/queries"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/pkg/errs"
)

func TestNewGetEarningsSummaryQuery_Valid(t *testing.T) {
	driverID := kernel.NewUUID()
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	query, err := queries.NewGetEarningsSummaryQuery(driverID, queries.PeriodWeek, now)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, driverID, query.DriverID())
	assert.Equal(t, queries.PeriodWeek, query.Period())
}

func TestNewGetEarningsSummaryQuery_EmptyPeriodDefaultsToAll(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	query, err := queries.NewGetEarningsSummaryQuery(kernel.NewUUID(), "", now)
	require.NoError(t, err)
	assert.Equal(t, queries.PeriodAll, query.Period())
}

func TestNewGetEarningsSummaryQuery_UnknownPeriod(t *testing.T) {
	now := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	_, err := queries.NewGetEarningsSummaryQuery(kernel.NewUUID(), "fortnight", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestGetEarningsSummaryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetEarningsSummaryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetEarningsSummaryQueryIsNotConstructed)
}

func TestNewGetDeliveryHistoryQuery_Valid(t *testing.T) {
	driverID := kernel.NewUUID()

	query, err := queries.NewGetDeliveryHistoryQuery(driverID, 10)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, 10, query.Limit())
}

func TestNewGetDeliveryHistoryQuery_ZeroLimitDefaults(t *testing.T) {
	query, err := queries.NewGetDeliveryHistoryQuery(kernel.NewUUID(), 0)
	require.NoError(t, err)
	assert.Equal(t, 20, query.Limit())
}

func TestNewGetDeliveryHistoryQuery_LimitTooLarge(t *testing.T) {
	_, err := queries.NewGetDeliveryHistoryQuery(kernel.NewUUID(), 101)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestGetDeliveryHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetDeliveryHistoryQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetDeliveryHistoryQueryIsNotConstructed)
}
