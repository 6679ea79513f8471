package commands

import (
	"context"
	"log/slog"
	"time"

	"linkmarket/internal/core/ports"
)

// NotifyStaleOrdersCommandHandler reminds publishers about requested orders
// they have not reacted to within the staleness window. The handler only
// reads: it never moves an order through its lifecycle, it just re-sends the
// notification the publisher received when the order was placed.
type NotifyStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewNotifyStaleOrdersCommandHandler creates a handler for stale order reminders.
func NewNotifyStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) NotifyStaleOrdersCommandHandler {
	return NotifyStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "notify_stale_orders_handler"),
	}
}

// Handle loads all requested orders untouched since the staleness cutoff and
// notifies each order's publisher. Delivery failures are logged per order and
// do not stop the sweep. No transaction is opened: the sweep is read-only and
// notifications must not hold a database transaction hostage.
func (h NotifyStaleOrdersCommandHandler) Handle(ctx context.Context, command NotifyStaleOrdersCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	cutoff := time.Now().UTC().Add(-command.StaleAfter())

	staleOrders, err := h.uowFactory.Create().OrderRepository().GetStaleRequested(ctx, cutoff)
	if err != nil {
		return err
	}

	if len(staleOrders) == 0 {
		return nil
	}

	reminded := 0
	for _, staleOrder := range staleOrders {
		err := h.notifier.Notify(ctx, staleOrder.Publisher().ID(), staleOrder.ID(), staleOrder.Status())
		if err != nil {
			h.logger.ErrorContext(ctx, "stale order reminder failed",
				"order_id", staleOrder.ID().String(),
				"publisher_id", staleOrder.Publisher().ID().String(),
				"error", err)
			continue
		}
		reminded++
	}

	h.logger.InfoContext(ctx, "stale order sweep finished",
		"stale", len(staleOrders),
		"reminded", reminded)
	return nil
}
