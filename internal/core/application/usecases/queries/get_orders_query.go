// Package queries contains read-side operations for dashboards.
// Query handlers read the order rows directly over SQL and never touch the
// domain aggregate: listing, searching, and counting orders must not compete
// with the state machine's write path.
package queries

import (
	"errors"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves the orders visible to one actor in one role:
// an advertiser sees the orders they placed, a publisher the orders placed
// against their websites. An optional status filter and a free-text search
// over the counterpart's name and email, the website domain, and the post
// title narrow the result.
//
// Example:
//
//	query, err := NewGetOrdersQuery(actorID, order.Publisher, order.Requested, "techdaily")
//	if err != nil {
//	    return err
//	}
//
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	actorID      kernel.UUID
	role         order.Role
	statusFilter order.Status
	search       string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for an actor's order dashboard.
// Pass order.StatusUnknown as statusFilter to list all statuses; any other
// value must be a valid status. The search string may be empty.
func NewGetOrdersQuery(actorID kernel.UUID, role order.Role, statusFilter order.Status, search string) (GetOrdersQuery, error) {
	if err := errors.Join(
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return GetOrdersQuery{}, err
	}

	if statusFilter != order.StatusUnknown {
		if err := statusFilter.Validate(); err != nil {
			return GetOrdersQuery{}, err
		}
	}

	return GetOrdersQuery{
		actorID:      actorID,
		role:         role,
		statusFilter: statusFilter,
		search:       search,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// ActorID returns the identifier of the viewing party.
func (q GetOrdersQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the side of the marketplace the actor is viewing as.
func (q GetOrdersQuery) Role() order.Role {
	return q.role
}

// StatusFilter returns the requested status filter, or order.StatusUnknown
// when the listing spans all statuses.
func (q GetOrdersQuery) StatusFilter() order.Status {
	return q.statusFilter
}

// HasStatusFilter reports whether a status filter was requested.
func (q GetOrdersQuery) HasStatusFilter() bool {
	return q.statusFilter != order.StatusUnknown
}

// Search returns the free-text search term, possibly empty.
func (q GetOrdersQuery) Search() string {
	return q.search
}

// GetOrdersQueryResponse represents one order row on a party's dashboard.
// The counterpart fields carry the other side of the order relative to the
// viewing role: the publisher for an advertiser's dashboard and vice versa.
type GetOrdersQueryResponse struct {
	ID               kernel.UUID
	Status           string
	ServiceType      string
	PriceCents       int64
	PostTitle        string
	CounterpartName  string
	CounterpartEmail string
	WebsiteDomain    string
	RejectionReason  string
	CompletedAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
