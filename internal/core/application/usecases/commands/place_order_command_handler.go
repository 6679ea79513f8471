package commands

import (
	"context"
	"log/slog"

	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Creates the order in the requested status with its timeline seeded, then
// notifies the publisher that a new request is waiting.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewPlaceOrderCommandHandler creates a handler for order placement operations.
func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, notifier ports.Notifier, logger *slog.Logger) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "place_order_handler"),
	}
}

// Handle processes the order placement command and returns the created order.
// The publisher notification is dispatched after the commit and never affects
// the outcome.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Advertiser(),
		cmd.Publisher(),
		cmd.Website(),
		cmd.ServiceType(),
		cmd.Price(),
		cmd.PostTitle(),
		cmd.Requirements(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatchNotification(h.notifier, h.logger, newOrder.Publisher().ID(), newOrder.ID(), newOrder.Status())

	return newOrder, nil
}
