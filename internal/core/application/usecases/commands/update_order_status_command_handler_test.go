package commands_test

import (
	"testing"
	"time"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T, customerID kernel.UUID) *order.Order {
	t.Helper()

	o, err := order.NewOrder(
		kernel.NewUUID(),
		customerID,
		kernel.NewUUID(),
		2,
		time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		"",
	)
	require.NoError(t, err)

	return o
}

func TestNewUpdateOrderStatusCommand(t *testing.T) {
	t.Run("should create command with valid fields", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.InProgress)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, order.InProgress, cmd.NewStatus())
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.UUID{}, order.InProgress)

		require.Error(t, err)
	})

	t.Run("should fail with undefined status", func(t *testing.T) {
		_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)

		require.Error(t, err)
	})
}

func TestUpdateOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, kernel.NewUUID())
	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_AllowsBackwardMove(t *testing.T) {
	ctx := t.Context()
	o := newTestOrder(t, kernel.NewUUID())
	require.NoError(t, o.ForceStatus(order.Completed))

	cmd, err := commands.NewUpdateOrderStatusCommand(o.ID(), order.Pending)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, order.Delivered)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
