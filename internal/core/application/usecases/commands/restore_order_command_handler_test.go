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

func newRestoreOrderCommand(t *testing.T, id int64) commands.RestoreOrderCommand {
	t.Helper()
	cmd, err := commands.NewRestoreOrderCommand(id)
	require.NoError(t, err)
	return cmd
}

func TestRestoreOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newRestoreOrderCommand(t, 1)
	deleted := restoredOrder(t, 1, order.Delivered, true)
	restored := restoredOrder(t, 1, order.Initiated, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDIncludingDeleted", ctx, int64(1)).Return(deleted, nil).Once(),
		repo.On("Restore", ctx, int64(1)).Return(nil).Once(),
		repo.On("GetByID", ctx, int64(1)).Return(restored, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		cache.On("Delete", ctx, ports.ActiveOrdersCacheKey).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreOrderCommandHandler(factory, cache)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Initiated, result.Status())
	assert.Nil(t, result.DeletedAt())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRestoreOrderCommandHandler_Handle_NotDeleted(t *testing.T) {
	ctx := t.Context()
	cmd := newRestoreOrderCommand(t, 1)
	active := restoredOrder(t, 1, order.Sent, false)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDIncludingDeleted", ctx, int64(1)).Return(active, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreOrderCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Contains(t, err.Error(), "order is not deleted")
	repo.AssertNotCalled(t, "Restore", mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Delete")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRestoreOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd := newRestoreOrderCommand(t, 99)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	cache := new(MockCache)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetByIDIncludingDeleted", ctx, int64(99)).
			Return(nil, errs.NewObjectNotFoundError("orderId", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRestoreOrderCommandHandler(factory, cache)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	cache.AssertNotCalled(t, "Delete")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
