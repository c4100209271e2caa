package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// MinUnitPrice is the smallest accepted unit price for a line item.
const MinUnitPrice = 0.01

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through NewItem or RestoreItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line item owned exclusively by an Order. It is a value object:
// once created it is never mutated, and items are only ever created together
// with their order.
type Item struct {
	// id is the surrogate key, zero until assigned by the store
	id int64

	// orderID references the owning order, zero until the order is persisted
	orderID int64

	description string
	quantity    int
	unitPrice   float64

	isConstructed bool
}

// NewItem creates a line item for a not-yet-persisted order.
// Validates that description is non-empty, quantity is at least 1 and
// unitPrice is at least MinUnitPrice.
func NewItem(description string, quantity int, unitPrice float64) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setDescription(description),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// RestoreItem reconstructs a line item from persistence, including its
// store-assigned identifiers. The same business rules apply as in NewItem.
func RestoreItem(id, orderID int64, description string, quantity int, unitPrice float64) (Item, error) {
	item, err := NewItem(description, quantity, unitPrice)
	if err != nil {
		return Item{}, err
	}

	item.id = id
	item.orderID = orderID
	return item, nil
}

// Validate ensures the Item was created through a constructor.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ID returns the store-assigned surrogate key (zero before persistence).
func (i Item) ID() int64 {
	return i.id
}

// OrderID returns the owning order's id (zero before persistence).
func (i Item) OrderID() int64 {
	return i.orderID
}

// Description returns the item description.
func (i Item) Description() string {
	return i.description
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

func (i *Item) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	i.description = description
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is less than 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < MinUnitPrice {
		return errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%g is less than %g", unitPrice, MinUnitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}
