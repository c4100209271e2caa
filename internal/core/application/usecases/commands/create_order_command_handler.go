package commands

import (
	"context"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Persists the order and its items atomically inside a unit of work and
// invalidates the active-orders cache entry afterwards.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	cache      ports.Cache
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, cache ports.Cache) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

// Handle processes the order creation command.
// The order starts in Initiated status with no tombstone; the order row and
// all item rows are committed in one transaction, so no partial order is ever
// visible. Returns the persisted aggregate with store-assigned ids.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.ClientName(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.OrderRepository().CreateWithItems(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	if err = h.cache.Delete(ctx, ports.ActiveOrdersCacheKey); err != nil {
		return nil, err
	}

	return created, nil
}
