package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// AdvanceOrderCommandHandler applies the order status state machine.
//
// The lookup uses the active scope, so a missing or tombstoned order yields an
// ObjectNotFoundError. The terminal transition persists the Delivered status
// first and then tombstones the row, so the soft-deleted order always carries
// status DELIVERED; both writes happen in one transaction. Every branch
// invalidates the active-orders cache entry.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.Cache
}

// NewAdvanceOrderCommandHandler creates a handler for lifecycle transitions.
func NewAdvanceOrderCommandHandler(uowFactory OrderUoWFactory, cache ports.Cache) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the advance command and returns the transition outcome.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (AdvanceOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return AdvanceOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()

	current, err := repo.GetByID(ctx, cmd.OrderID())
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if current.Status() == order.Delivered {
		// Already terminal; force the tombstone again so repeated calls stay
		// idempotent even if the delete was lost.
		if err = repo.SoftDelete(ctx, cmd.OrderID()); err != nil {
			return AdvanceOrderResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return AdvanceOrderResult{}, err
		}
		if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
			return AdvanceOrderResult{}, err
		}

		return AdvanceOrderResult{
			SoftDeleted:   true,
			CurrentStatus: order.Delivered,
		}, nil
	}

	next, err := current.Status().Next()
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if next == order.Delivered {
		// Terminal transition: persist the status, then tombstone the order.
		if _, err = repo.UpdateStatus(ctx, cmd.OrderID(), order.Delivered); err != nil {
			return AdvanceOrderResult{}, err
		}
		if err = repo.SoftDelete(ctx, cmd.OrderID()); err != nil {
			return AdvanceOrderResult{}, err
		}
		if err = uow.Commit(ctx); err != nil {
			return AdvanceOrderResult{}, err
		}
		if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
			return AdvanceOrderResult{}, err
		}

		return AdvanceOrderResult{
			SoftDeleted:    true,
			PreviousStatus: current.Status(),
			CurrentStatus:  order.Delivered,
		}, nil
	}

	updated, err := repo.UpdateStatus(ctx, cmd.OrderID(), next)
	if err != nil {
		return AdvanceOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AdvanceOrderResult{}, err
	}
	if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
		return AdvanceOrderResult{}, err
	}

	return AdvanceOrderResult{
		Order:          updated,
		PreviousStatus: current.Status(),
		CurrentStatus:  next,
	}, nil
}
