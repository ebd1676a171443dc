package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/core/ports"
)

func placeCmd(t *testing.T) commands.PlaceOrderCommand {
	t.Helper()
	cmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), testRoute(t), testPackage(t), order.Normal, "")
	require.NoError(t, err)
	return cmd
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := placeCmd(t)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	notifier := &RecordingNotifier{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("StatsRepository").Return(statsRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*order.Order).AttachID(7)
		}).Return(nil).Once()
	trackingRepo.On("AddStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Once()
	expectStatistics(statsRepo, orderRepo, nil)

	h := commands.NewPlaceOrderCommandHandler(factory, &StubGeoService{estimate: ports.RouteEstimate{DistanceKm: 10, Minutes: 25}}, notifier)
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, int64(7), result.OrderID)
	assert.NoError(t, result.OrderNumber.Validate())
	assert.Equal(t, "300.00", result.Fees.DeliveryFee.String())
	assert.Equal(t, "345.00", result.Fees.TotalCost.String())

	require.Len(t, notifier.statusUpdates, 1)
	assert.Equal(t, "confirmed", notifier.statusUpdates[0].StatusLabel)
	assert.Equal(t, "John Otieno", notifier.statusUpdates[0].RecipientName)

	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
	statsRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_GeoError(t *testing.T) {
	ctx := t.Context()
	cmd := placeCmd(t)

	factory := new(MockLifecycleUoWFactory)
	h := commands.NewPlaceOrderCommandHandler(factory, &StubGeoService{err: errors.New("maps unavailable")}, &RecordingNotifier{})

	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	h := commands.NewPlaceOrderCommandHandler(new(MockLifecycleUoWFactory), &StubGeoService{}, &RecordingNotifier{})

	_, err := h.Handle(ctx, commands.PlaceOrderCommand{})
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
}

func TestPlaceOrderCommandHandler_Handle_StatsFailureAborts(t *testing.T) {
	ctx := t.Context()
	cmd := placeCmd(t)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	notifier := &RecordingNotifier{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("StatsRepository").Return(statsRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	trackingRepo.On("AddStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Once()
	statsRepo.On("GetDailyForUpdate", mock.Anything, mock.Anything).Return(nil, errors.New("deadlock")).Once()

	h := commands.NewPlaceOrderCommandHandler(factory, &StubGeoService{estimate: ports.RouteEstimate{DistanceKm: 10, Minutes: 25}}, notifier)
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)

	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, notifier.statusUpdates, "no notification without a commit")
}
