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

func TestDeclineOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)

	cmd, err := commands.NewDeclineOrderCommand(7, driverID, "too far out")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockTrackingUoW)
	factory := new(MockTrackingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()

	var event order.TrackingEvent
	trackingRepo.On("AddEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { event = args.Get(1).(order.TrackingEvent) }).
		Return(nil).Once()

	h := commands.NewDeclineOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Confirmed, target.Status(), "declining never transitions")
	assert.Nil(t, target.Driver())
	assert.Equal(t, order.EventOrderDeclined, event.EventType)
	assert.Contains(t, event.Description, "too far out")
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	trackingRepo.AssertNotCalled(t, "AddStatusHistory", mock.Anything, mock.Anything)
}

func TestDeclineOrderCommandHandler_Handle_AlreadyTaken(t *testing.T) {
	ctx := t.Context()
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(kernel.NewUUID(), time.Now()))

	cmd, err := commands.NewDeclineOrderCommand(7, kernel.NewUUID(), "busy")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockTrackingUoW)
	factory := new(MockTrackingUoWFactory)

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()

	h := commands.NewDeclineOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound, "a taken order is no longer declinable")
	uow.AssertNotCalled(t, "Commit", ctx)
}
