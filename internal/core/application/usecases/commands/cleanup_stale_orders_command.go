package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/guard"
)

// StaleOrderAge is how long an order may sit untouched in a non-terminal
// status before the cleanup sweep forces it through the terminal transition.
const StaleOrderAge = 30 * 24 * time.Hour

var ErrCleanupStaleOrdersCommandIsNotConstructed = errors.New(
	"CleanupStaleOrdersCommand must be created via NewCleanupStaleOrdersCommand constructor",
)

// CleanupStaleOrdersCommand triggers a sweep over orders whose updatedAt is
// older than StaleOrderAge and whose status is not Delivered. This is a
// parameterless maintenance command.
type CleanupStaleOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewCleanupStaleOrdersCommand creates a command to reap stale orders.
func NewCleanupStaleOrdersCommand() CleanupStaleOrdersCommand {
	return CleanupStaleOrdersCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CleanupStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCleanupStaleOrdersCommandIsNotConstructed)
}
