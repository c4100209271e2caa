package queries

import (
	"context"
	"encoding/json"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// ListActiveOrdersQueryHandler serves the active-orders listing with a
// cache-aside read path.
//
// The cache entry under ports.ActiveOrdersCacheKey holds the JSON-serialized
// listing with a bounded TTL. A hit is returned as-is; a miss, an unreadable
// entry, or a cache transport failure all degrade to a direct store read,
// after which the cache is repopulated best-effort. The cache is never the
// source of truth: writers invalidate the key, so a racing reader observes at
// worst a miss, never a stale hit beyond the TTL window.
type ListActiveOrdersQueryHandler struct {
	db    *gorm.DB
	cache ports.Cache
}

// NewListActiveOrdersQueryHandler creates a handler for the active listing.
func NewListActiveOrdersQueryHandler(db *gorm.DB, cache ports.Cache) ListActiveOrdersQueryHandler {
	return ListActiveOrdersQueryHandler{db: db, cache: cache}
}

// Handle returns all active orders with items, ordered by orderId ascending.
func (h ListActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListActiveOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if data, err := h.cache.Get(ctx, ports.ActiveOrdersCacheKey); err == nil {
		var cached []OrderResponse
		if err = json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	orders, err := h.loadActiveOrders(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(orders); err == nil {
		// Repopulation is best effort: a cache failure must not fail the read.
		_ = h.cache.Set(ctx, ports.ActiveOrdersCacheKey, data, ports.ActiveOrdersCacheTTL)
	}

	return orders, nil
}

func (h ListActiveOrdersQueryHandler) loadActiveOrders(ctx context.Context) ([]OrderResponse, error) {
	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			client_name,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE deleted_at IS NULL
		  AND status <> ?
		ORDER BY order_id
	`, order.Delivered.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	index := make(map[int64]int)
	for rows.Next() {
		var resp OrderResponse
		if err = rows.Scan(
			&resp.OrderID,
			&resp.ClientName,
			&resp.Status,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		); err != nil {
			return nil, err
		}
		resp.Items = make([]OrderItemResponse, 0)
		index[resp.OrderID] = len(orders)
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]int64, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.OrderID)
	}

	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			order_id,
			description,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id IN ?
		ORDER BY item_id
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item OrderItemResponse
		if err = itemRows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.Description,
			&item.Quantity,
			&item.UnitPrice,
		); err != nil {
			return nil, err
		}
		if i, ok := index[item.OrderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}
	if err = itemRows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
