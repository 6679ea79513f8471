package commands

import (
	"context"
	"log/slog"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/core/ports"
)

const notifyTimeout = 5 * time.Second

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Loads the order, lets the aggregate decide whether the transition is legal
// for this actor, and persists the result with an optimistic version check.
// After a successful commit the counterpart party is notified of the change.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.Notifier,
	logger *slog.Logger,
) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		logger:     logger.With("component", "change_order_status_handler"),
	}
}

// Handle processes the transition command and returns the updated order.
// A concurrent update surfaces as a version conflict error so the caller can
// re-read the order and retry against its current state.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderAggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.Transition(
		cmd.ActorID(),
		cmd.ActorRole(),
		cmd.TargetStatus(),
		cmd.Note(),
		cmd.RejectionReason(),
	); err != nil {
		return nil, err
	}

	counterpart, err := orderAggregate.Counterpart(cmd.ActorRole())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	dispatchNotification(h.notifier, h.logger, counterpart.ID(), orderAggregate.ID(), orderAggregate.Status())

	return orderAggregate, nil
}

// dispatchNotification delivers a status notification in the background.
// The transition is already committed, so delivery failures are logged and
// otherwise ignored. A fresh context bounds the attempt independently of the
// originating request.
func dispatchNotification(
	notifier ports.Notifier,
	logger *slog.Logger,
	recipientID kernel.UUID,
	orderID kernel.UUID,
	newStatus order.Status,
) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		if err := notifier.Notify(ctx, recipientID, orderID, newStatus); err != nil {
			logger.Error("notification delivery failed",
				"recipient_id", recipientID.String(),
				"order_id", orderID.String(),
				"status", newStatus.String(),
				"error", err)
		}
	}()
}
