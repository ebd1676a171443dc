package commands_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"deliverylink/internal/core/application/usecases/commands"
	"deliverylink/internal/core/domain/model/kernel"
	"deliverylink/internal/core/domain/model/order"
	"deliverylink/internal/pkg/errs"
)

func TestAcceptOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)
	cmd, err := commands.NewAcceptOrderCommand(7, driverID)
	require.NoError(t, err)

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

	orderRepo.On("GetActiveByDriver", mock.Anything, driverID).Return([]*order.Order{}, nil).Once()
	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()
	orderRepo.On("Update", mock.Anything, target).Return(nil).Once()
	trackingRepo.On("AddStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Once()
	expectStatistics(statsRepo, orderRepo, []*order.Order{target})

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Assigned, target.Status())
	require.NotNil(t, target.Driver())
	assert.True(t, target.Driver().IsEqual(driverID))

	require.Len(t, notifier.statusUpdates, 1)
	assert.Equal(t, "driver assigned", notifier.statusUpdates[0].Headline)

	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAcceptOrderCommandHandler_Handle_DriverHasActiveDelivery(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(7, driverID)
	require.NoError(t, err)

	busy := confirmedOrder(t, 3)
	require.NoError(t, busy.Accept(driverID, time.Now()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	notifier := &RecordingNotifier{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("GetActiveByDriver", mock.Anything, driverID).Return([]*order.Order{busy}, nil).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExclusivityViolation)
	orderRepo.AssertNotCalled(t, "GetForUpdate", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
	assert.Empty(t, notifier.statusUpdates)
}

func TestAcceptOrderCommandHandler_Handle_LostRace(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	cmd, err := commands.NewAcceptOrderCommand(7, driverID)
	require.NoError(t, err)

	// Another driver won the row lock first.
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(kernel.NewUUID(), time.Now()))

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("GetActiveByDriver", mock.Anything, driverID).Return([]*order.Order{}, nil).Once()
	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()

	h := commands.NewAcceptOrderCommandHandler(factory, &RecordingNotifier{})
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
