package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// RestoreOrderCommandHandler brings a soft-deleted order back to life.
//
// The lookup deliberately includes tombstoned rows: a missing order yields an
// ObjectNotFoundError, while an order that exists but is still active yields
// an InvalidStateError ("order is not deleted"). On success the tombstone is
// cleared, the status resets to Initiated, and the cache entry is invalidated.
type RestoreOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.Cache
}

// NewRestoreOrderCommandHandler creates a handler for restore operations.
func NewRestoreOrderCommandHandler(uowFactory OrderUoWFactory, cache ports.Cache) RestoreOrderCommandHandler {
	return RestoreOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the restore command and returns the restored order.
func (h *RestoreOrderCommandHandler) Handle(ctx context.Context, cmd RestoreOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	existing, err := repo.GetByIDIncludingDeleted(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if !existing.IsDeleted() {
		return nil, errs.NewInvalidStateError("orderId", "order is not deleted")
	}

	if err = repo.Restore(ctx, cmd.OrderID()); err != nil {
		return nil, err
	}

	restored, err := repo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
		return nil, err
	}

	return restored, nil
}
