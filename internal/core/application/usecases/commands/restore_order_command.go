package commands

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrRestoreOrderCommandIsNotConstructed = errors.New(
	"RestoreOrderCommand must be created via NewRestoreOrderCommand constructor",
)

// RestoreOrderCommand requests that a soft-deleted order be made active again.
// Restoring clears the tombstone and resets the status to Initiated.
type RestoreOrderCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewRestoreOrderCommand creates a command to restore a soft-deleted order.
func NewRestoreOrderCommand(orderID int64) (RestoreOrderCommand, error) {
	cmd := RestoreOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RestoreOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RestoreOrderCommand) Validate() error {
	return c.guard.Validate(ErrRestoreOrderCommandIsNotConstructed)
}

// OrderID returns the id of the order to restore.
func (c RestoreOrderCommand) OrderID() int64 {
	return c.orderID
}

func (c *RestoreOrderCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%d is not a positive id", orderID),
		)
	}
	c.orderID = orderID
	return nil
}
