package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CleanupStaleOrdersCommandHandler reaps orders stuck in a non-terminal status.
//
// Each matched order is forced through the same terminal transition as a
// regular advance: status persisted as Delivered, then tombstoned. The sweep
// is idempotent because tombstoned orders drop out of the active query scope;
// a second run over the same data matches nothing. The aggregate cache entry
// is invalidated once at the end of the sweep, and only when the listing's
// membership actually changed.
type CleanupStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.Cache
}

// NewCleanupStaleOrdersCommandHandler creates a handler for the cleanup sweep.
func NewCleanupStaleOrdersCommandHandler(uowFactory OrderUoWFactory, cache ports.Cache) CleanupStaleOrdersCommandHandler {
	return CleanupStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle runs one sweep and returns the number of orders cleared.
func (h *CleanupStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CleanupStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	threshold := time.Now().Add(-StaleOrderAge)

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	stale, err := repo.FindStale(ctx, threshold)
	if err != nil {
		return 0, err
	}

	for _, staleOrder := range stale {
		if _, err = repo.UpdateStatus(ctx, staleOrder.ID(), order.Delivered); err != nil {
			return 0, err
		}
		if err = repo.SoftDelete(ctx, staleOrder.ID()); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	if len(stale) > 0 {
		if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
			return 0, err
		}
	}

	return len(stale), nil
}
