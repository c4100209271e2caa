package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAdvanceOrderCommand(t *testing.T, id int64) commands.AdvanceOrderCommand {
	t.Helper()
	cmd, err := commands.NewAdvanceOrderCommand(id)
	require.NoError(t, err)
	return cmd
}

func TestAdvanceOrderCommandHandler_Handle_InitiatedBecomesSent(t *testing.T) {
	ctx := t.Context()
	cmd := newAdvanceOrderCommand(t, 1)
	initiated := restoredOrder(t, 1, order.Initiated, false)
	sent := restoredOrder(t, 1, order.Sent, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, int64(1)).Return(initiated, nil).Once(),
		repo.On("UpdateStatus", ctx, int64(1), order.Sent).Return(sent, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Delete", ctx, ports.ActiveOrdersCacheKey).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory, cache)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, result.SoftDeleted)
	assert.Equal(t, order.Initiated, result.PreviousStatus)
	assert.Equal(t, order.Sent, result.CurrentStatus)
	require.NotNil(t, result.Order)
	assert.Equal(t, order.Sent, result.Order.Status())
	assert.Nil(t, result.Order.DeletedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_SentBecomesDeliveredAndSoftDeleted(t *testing.T) {
	ctx := t.Context()
	cmd := newAdvanceOrderCommand(t, 1)
	sent := restoredOrder(t, 1, order.Sent, false)
	delivered := restoredOrder(t, 1, order.Delivered, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, int64(1)).Return(sent, nil).Once(),
		repo.On("UpdateStatus", ctx, int64(1), order.Delivered).Return(delivered, nil).Once(),
		repo.On("SoftDelete", ctx, int64(1)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Delete", ctx, ports.ActiveOrdersCacheKey).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory, cache)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.SoftDeleted)
	assert.Equal(t, order.Sent, result.PreviousStatus)
	assert.Equal(t, order.Delivered, result.CurrentStatus)
	assert.Nil(t, result.Order)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_DeliveredIsIdempotent(t *testing.T) {
	ctx := t.Context()
	cmd := newAdvanceOrderCommand(t, 1)
	delivered := restoredOrder(t, 1, order.Delivered, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, int64(1)).Return(delivered, nil).Once(),
		repo.On("SoftDelete", ctx, int64(1)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Delete", ctx, ports.ActiveOrdersCacheKey).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory, cache)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.SoftDeleted)
	assert.Equal(t, order.Unknown, result.PreviousStatus)
	assert.Equal(t, order.Delivered, result.CurrentStatus)
	assert.Nil(t, result.Order)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestAdvanceOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newAdvanceOrderCommand(t, 99)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByID", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("orderId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAdvanceOrderCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cache.AssertNotCalled(t, "Delete")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
