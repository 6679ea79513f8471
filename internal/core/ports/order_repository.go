// Package ports defines the contracts between the application core and
// infrastructure adapters, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The state machine is the sole writer of order records; read-side
// projections for dashboards live in the query handlers instead.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	//
	// The write is guarded by an optimistic version check against the
	// version the aggregate was loaded with: if a concurrent writer
	// committed in between, Update returns a VersionConflictError and
	// persists nothing. New timeline entries are appended together with
	// the status change; committed entries are never touched.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// including its complete timeline.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetStaleRequested retrieves orders that have been sitting in the
	// requested status since before the given cutoff. Used by the
	// reminder job to re-notify publishers; ordered oldest first.
	GetStaleRequested(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
