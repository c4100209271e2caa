package order

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the aggregate root for a client order and its line items.
//
// Order follows these invariants:
//   - clientName is non-empty and immutable after creation
//   - a newly created order has at least one line item (enforced here,
//     not by the store)
//   - status only moves forward: Initiated -> Sent -> Delivered
//   - Delivered is terminal and is always accompanied by a soft delete
//   - a soft-deleted order only becomes active again via an explicit restore,
//     which clears the tombstone and resets the status to Initiated
//
// The struct uses private fields to ensure encapsulation; instances are
// created through NewOrder (API path) or RestoreOrder (persistence path).
type Order struct {
	// id is the store-assigned surrogate key, zero until persisted
	id int64

	clientName string
	status     Status
	items      []Item

	createdAt time.Time
	updatedAt time.Time

	// deletedAt is the soft-delete tombstone; nil means the order is active
	deletedAt *time.Time

	isConstructed bool
}

// NewOrder creates a new order in Initiated status with the given line items.
//
// Validation rules:
//   - clientName must be non-empty
//   - items must contain at least one element
//   - every item must have been built via NewItem
//
// Identifiers and timestamps stay zero until the store assigns them.
func NewOrder(clientName string, items []Item) (*Order, error) {
	o := &Order{
		status:        Initiated,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientName(clientName),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status, an empty item slice, and a non-nil tombstone,
// since the store is allowed to hold orders in every lifecycle state.
func RestoreOrder(
	id int64,
	clientName string,
	status Status,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
	deletedAt *time.Time,
) (*Order, error) {
	if clientName == "" {
		return nil, errs.NewValueIsRequiredError("clientName")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:            id,
		clientName:    clientName,
		status:        status,
		items:         items,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		deletedAt:     deletedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned surrogate key (zero before persistence).
func (o *Order) ID() int64 {
	return o.id
}

// ClientName returns the name of the client who placed the order.
func (o *Order) ClientName() string {
	return o.clientName
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the line items owned by this order.
func (o *Order) Items() []Item {
	return o.items
}

// CreatedAt returns the store-maintained creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the store-maintained last-modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// DeletedAt returns the soft-delete tombstone, or nil for an active order.
func (o *Order) DeletedAt() *time.Time {
	return o.deletedAt
}

// IsDeleted reports whether the order carries a soft-delete tombstone.
func (o *Order) IsDeleted() bool {
	return o.deletedAt != nil
}

func (o *Order) setClientName(clientName string) error {
	if clientName == "" {
		return errs.NewValueIsRequiredError("clientName")
	}
	o.clientName = clientName
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
