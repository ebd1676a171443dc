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

func TestCancelOrderCommand_RequiresReason(t *testing.T) {
	_, err := commands.NewCancelOrderCommand(7, kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	target := confirmedOrder(t, 7)
	cmd, err := commands.NewCancelOrderCommand(7, target.Customer(), "recipient unavailable")
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

	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()
	orderRepo.On("Update", mock.Anything, target).Return(nil).Once()

	var recorded order.StatusHistoryEntry
	trackingRepo.On("AddStatusHistory", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(order.StatusHistoryEntry)
		}).Return(nil).Once()
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Once()
	expectStatistics(statsRepo, orderRepo, []*order.Order{target})

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, target.Status())
	assert.Equal(t, "recipient unavailable", recorded.Reason, "reason lands in the audit trail")
	require.NotNil(t, recorded.PreviousStatus)
	assert.Equal(t, order.Confirmed, *recorded.PreviousStatus)
}

func TestCancelOrderCommandHandler_Handle_Stranger(t *testing.T) {
	ctx := t.Context()
	target := confirmedOrder(t, 7)
	cmd, err := commands.NewCancelOrderCommand(7, kernel.NewUUID(), "not my order")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, &RecordingNotifier{})
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "unrelated actors see not-found")
	assert.Equal(t, order.Confirmed, target.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCancelOrderCommandHandler_Handle_AssignedDriver(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(driverID, time.Now()))

	cmd, err := commands.NewCancelOrderCommand(7, driverID, "vehicle breakdown")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	statsRepo := new(MockStatsRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("StatsRepository").Return(statsRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()
	orderRepo.On("Update", mock.Anything, target).Return(nil).Once()
	trackingRepo.On("AddStatusHistory", mock.Anything, mock.Anything).Return(nil).Once()
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).Return(nil).Once()
	expectStatistics(statsRepo, orderRepo, []*order.Order{target})

	h := commands.NewCancelOrderCommandHandler(factory, &RecordingNotifier{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Cancelled, target.Status())
}

func TestCancelOrderCommandHandler_Handle_AfterPickup(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(driverID, time.Now()))
	require.NoError(t, target.MarkPickedUp(driverID, time.Now()))

	cmd, err := commands.NewCancelOrderCommand(7, target.Customer(), "changed my mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("GetForUpdate", mock.Anything, int64(7)).Return(target, nil).Once()

	h := commands.NewCancelOrderCommandHandler(factory, &RecordingNotifier{})
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, order.PickedUp, target.Status())
}
