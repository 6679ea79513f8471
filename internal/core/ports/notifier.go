package ports

import (
	"context"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
)

// Notifier delivers a best-effort notification to a party about an order's
// new status. It is invoked after a transition commits; implementations may
// fail, and callers log such failures without ever reversing the committed
// transition.
type Notifier interface {
	Notify(ctx context.Context, recipientID kernel.UUID, orderID kernel.UUID, newStatus order.Status) error
}
