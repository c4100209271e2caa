// Package queries contains read-only operations in the CQRS architecture.
// Query handlers read the store directly (bypassing the aggregate repository)
// and shape results into JSON-serializable response structures. The
// active-orders listing is fronted by a cache-aside read path.
package queries

import "time"

// OrderResponse is the read-model representation of an order with its items.
// The JSON shape doubles as the cache document for the active-orders listing.
type OrderResponse struct {
	OrderID    int64               `json:"orderId"`
	ClientName string              `json:"clientName"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
	CreatedAt  time.Time           `json:"createdAt"`
	UpdatedAt  time.Time           `json:"updatedAt"`
}

// OrderItemResponse is the read-model representation of a single line item.
type OrderItemResponse struct {
	ItemID      int64   `json:"itemId"`
	OrderID     int64   `json:"orderId"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}
