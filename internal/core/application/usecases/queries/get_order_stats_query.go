package queries

import (
	"errors"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/guard"
)

var (
	ErrGetOrderStatsQueryIsNotConstructed = errors.New(
		"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
	)
)

// GetOrderStatsQuery retrieves per-status order counts for one actor in one
// role, powering the dashboard summary tiles.
type GetOrderStatsQuery struct {
	actorID kernel.UUID
	role    order.Role

	guard guard.ConstructorGuard
}

// NewGetOrderStatsQuery creates a query for an actor's order statistics.
func NewGetOrderStatsQuery(actorID kernel.UUID, role order.Role) (GetOrderStatsQuery, error) {
	if err := errors.Join(
		actorID.Validate(),
		role.Validate(),
	); err != nil {
		return GetOrderStatsQuery{}, err
	}

	return GetOrderStatsQuery{
		actorID: actorID,
		role:    role,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

// ActorID returns the identifier of the viewing party.
func (q GetOrderStatsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Role returns the side of the marketplace the actor is viewing as.
func (q GetOrderStatsQuery) Role() order.Role {
	return q.role
}

// GetOrderStatsQueryResponse represents order counts per lifecycle status.
// Statuses with no orders report zero, so the response shape is stable.
type GetOrderStatsQueryResponse struct {
	Total              int64
	Requested          int64
	InProgress         int64
	AdvertiserApproval int64
	Completed          int64
	Rejected           int64
}
