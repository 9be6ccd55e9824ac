package commands_test

import (
	"testing"

	"laundry/internal/core/application/usecases/commands"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCancelOrderCommand(t *testing.T) {
	t.Run("should create command with valid ids", func(t *testing.T) {
		orderID := kernel.NewUUID()
		customerID := kernel.NewUUID()

		cmd, err := commands.NewCancelOrderCommand(orderID, customerID)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, orderID, cmd.OrderID())
		assert.Equal(t, customerID, cmd.CustomerID())
	})

	t.Run("should fail with zero order id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.UUID{}, kernel.NewUUID())

		require.Error(t, err)
	})

	t.Run("should fail with zero customer id", func(t *testing.T) {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), kernel.UUID{})

		require.Error(t, err)
	})
}

func TestCancelOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := newTestOrder(t, customerID)

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, o.ID(), customerID).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_DeliveredOrderCanBeCancelled(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := newTestOrder(t, customerID)
	require.NoError(t, o.ForceStatus(order.Delivered))

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, o.ID(), customerID).Return(o, nil).Once(),
		orderRepo.On("Update", mock.Anything, o).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, o.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_CompletedOrderRejected(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	o := newTestOrder(t, customerID)
	require.NoError(t, o.ForceStatus(order.Completed))

	cmd, err := commands.NewCancelOrderCommand(o.ID(), customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, o.ID(), customerID).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, order.Completed, o.Status())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_ForeignOrderIsNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	cmd, err := commands.NewCancelOrderCommand(orderID, customerID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetForCustomer", mock.Anything, orderID, customerID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}
