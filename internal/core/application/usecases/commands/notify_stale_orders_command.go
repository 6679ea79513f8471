package commands

import (
	"errors"
	"time"

	"linkmarket/internal/pkg/errs"
	"linkmarket/internal/pkg/guard"
)

var ErrNotifyStaleOrdersCommandIsNotConstructed = errors.New(
	"NotifyStaleOrdersCommand must be created via NewNotifyStaleOrdersCommand constructor",
)

// NotifyStaleOrdersCommand triggers reminder notifications for orders that
// have been sitting in the requested status without a publisher response.
// The staleness window says how long an order may stay untouched before
// its publisher is reminded.
type NotifyStaleOrdersCommand struct {
	staleAfter time.Duration

	guard guard.ConstructorGuard
}

// NewNotifyStaleOrdersCommand creates a command with the given staleness window.
func NewNotifyStaleOrdersCommand(staleAfter time.Duration) (NotifyStaleOrdersCommand, error) {
	if staleAfter <= 0 {
		return NotifyStaleOrdersCommand{}, errs.NewValueIsInvalidError("staleAfter")
	}

	return NotifyStaleOrdersCommand{
		staleAfter: staleAfter,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c *NotifyStaleOrdersCommand) StaleAfter() time.Duration {
	return c.staleAfter
}

// Validate ensures the command was created through the constructor.
func (c *NotifyStaleOrdersCommand) Validate() error {
	return c.guard.Validate(
		ErrNotifyStaleOrdersCommandIsNotConstructed,
	)
}
