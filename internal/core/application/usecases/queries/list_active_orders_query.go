package queries

import (
	"errors"

	"ordering/internal/pkg/guard"
)

var ErrListActiveOrdersQueryIsNotConstructed = errors.New(
	"ListActiveOrdersQuery must be created via NewListActiveOrdersQuery constructor",
)

// ListActiveOrdersQuery retrieves all active orders with their items.
// Active means not soft-deleted and not in DELIVERED status (delivered orders
// are always tombstoned, so the status filter is the visible half of the same
// rule). This is a parameterless query.
type ListActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListActiveOrdersQuery creates a query for the active-orders listing.
func NewListActiveOrdersQuery() ListActiveOrdersQuery {
	return ListActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListActiveOrdersQueryIsNotConstructed)
}
