package commands

import (
	"errors"
	"fmt"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrAdvanceOrderCommandIsNotConstructed = errors.New(
	"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
)

// AdvanceOrderCommand requests the next lifecycle transition for an order:
// Initiated orders become Sent, Sent orders become Delivered and are
// soft-deleted, and already-Delivered orders are defensively tombstoned again.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewAdvanceOrderCommand creates a command to advance the order's status.
func NewAdvanceOrderCommand(orderID int64) (AdvanceOrderCommand, error) {
	cmd := AdvanceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to advance.
func (c AdvanceOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *AdvanceOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a positive id", orderID),
		)
	}
	c.orderID = orderID
	return nil
}

// AdvanceOrderResult reports the outcome of a lifecycle transition.
//
// For a plain forward transition (Initiated -> Sent), Order carries the
// updated aggregate and SoftDeleted is false. When the transition reaches the
// terminal status, SoftDeleted is true, Order is nil and CurrentStatus is
// Delivered; PreviousStatus is Sent for the regular terminal transition and
// Unknown when an already-delivered order was tombstoned again.
type AdvanceOrderResult struct {
	Order          *order.Order
	SoftDeleted    bool
	PreviousStatus order.Status
	CurrentStatus  order.Status
}
