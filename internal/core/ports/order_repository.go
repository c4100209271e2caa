package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The store applies soft-delete query-scope discipline: every "active" method
// filters out tombstoned rows, and an explicit including-deleted variant exists
// for the restore path. The store is always authoritative; the cache is only a
// derived view.
type OrderRepository interface {
	// FindActive retrieves all non-deleted orders whose status is not
	// Delivered, including their items, ordered by id ascending.
	FindActive(ctx context.Context) ([]*order.Order, error)

	// CreateWithItems persists a new order together with all of its line
	// items atomically and returns the stored aggregate with ids and
	// timestamps assigned.
	CreateWithItems(ctx context.Context, aggregate *order.Order) (*order.Order, error)

	// GetByID retrieves a non-deleted order with its items.
	// Returns an ObjectNotFoundError when the order is absent or tombstoned.
	GetByID(ctx context.Context, id int64) (*order.Order, error)

	// GetByIDIncludingDeleted retrieves an order regardless of its tombstone.
	// Used by the restore path.
	GetByIDIncludingDeleted(ctx context.Context, id int64) (*order.Order, error)

	// UpdateStatus persists a new status for the order and returns the
	// updated aggregate.
	UpdateStatus(ctx context.Context, id int64, status order.Status) (*order.Order, error)

	// SoftDelete marks the order with a tombstone timestamp, removing it
	// from all active-scope queries.
	SoftDelete(ctx context.Context, id int64) error

	// Restore clears the tombstone and resets the status to Initiated.
	Restore(ctx context.Context, id int64) error

	// FindStale retrieves active-scope orders last touched before olderThan
	// whose status is not Delivered. Used by the cleanup sweep.
	FindStale(ctx context.Context, olderThan time.Time) ([]*order.Order, error)
}
