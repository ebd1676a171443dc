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

func TestSendDeliveryCodeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(driverID, time.Now()))
	require.NoError(t, target.MarkPickedUp(driverID, time.Now()))

	cmd, err := commands.NewSendDeliveryCodeCommand(7, driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	codeRepo := new(MockDeliveryCodeRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	notifier := &RecordingNotifier{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DeliveryCodeRepository").Return(codeRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()

	var stored order.DeliveryCode
	codeRepo.On("Add", mock.Anything, mock.AnythingOfType("order.DeliveryCode")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(order.DeliveryCode)
		}).Return(nil).Once()

	h := commands.NewSendDeliveryCodeCommandHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Len(t, stored.Code, 6)
	assert.Equal(t, int64(7), stored.OrderID)
	assert.Equal(t, stored.CreatedAt.Add(10*time.Minute), stored.ExpiresAt)

	require.Len(t, notifier.codes, 1)
	assert.Equal(t, stored.Code, notifier.codes[0].Code)
	assert.Equal(t, "John Otieno", notifier.codes[0].RecipientName)

	assert.Equal(t, order.PickedUp, target.Status(), "issuing a code never changes status")
	codeRepo.AssertExpectations(t)
}

func TestSendDeliveryCodeCommandHandler_Handle_WrongStatus(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	target := confirmedOrder(t, 7)
	require.NoError(t, target.Accept(driverID, time.Now()))

	cmd, err := commands.NewSendDeliveryCodeCommand(7, driverID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLifecycleUoW)
	factory := new(MockLifecycleUoWFactory)
	notifier := &RecordingNotifier{}

	factory.On("Create").Return(uow).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil)

	orderRepo.On("Get", mock.Anything, int64(7)).Return(target, nil).Once()

	h := commands.NewSendDeliveryCodeCommandHandler(factory, notifier)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Empty(t, notifier.codes)
}
