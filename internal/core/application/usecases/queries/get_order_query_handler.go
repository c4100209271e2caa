package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler serves the single-order lookup. The lookup reads the
// store directly and is not cached: point reads are cheap and the listing
// cache only covers the active collection.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns the active order with the given id, or an object-not-found
// error when it does not exist or has been soft-deleted.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var resp OrderResponse
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			client_name,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE order_id = ?
		  AND deleted_at IS NULL
	`, query.OrderID()).Row()

	err := row.Scan(
		&resp.OrderID,
		&resp.ClientName,
		&resp.Status,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return OrderResponse{}, err
	}

	resp.Items = make([]OrderItemResponse, 0)
	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			item_id,
			order_id,
			description,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY item_id
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderResponse{}, err
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
			return OrderResponse{}, err
		}
		resp.Items = append(resp.Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return OrderResponse{}, err
	}

	return resp, nil
}
