package queries

import (
	"context"

	"linkmarket/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetOrderStatsQueryHandler computes per-status order counts for one party.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderStatsQueryHandler creates a handler for order statistics queries.
func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

// Handle executes the statistics query. Counts are scoped to the orders where
// the actor is the party matching the queried role; statuses without orders
// count zero.
func (h GetOrderStatsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStatsQuery,
) (GetOrderStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	scopeColumn := "advertiser_id"
	if query.Role() == order.Publisher {
		scopeColumn = "publisher_id"
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status,
			COUNT(*)
		FROM orders
		WHERE `+scopeColumn+` = ?
		GROUP BY status
	`, query.ActorID().Bytes()).Rows()
	if err != nil {
		return GetOrderStatsQueryResponse{}, err
	}
	defer rows.Close()

	var stats GetOrderStatsQueryResponse
	for rows.Next() {
		var status int
		var count int64

		if err = rows.Scan(&status, &count); err != nil {
			return GetOrderStatsQueryResponse{}, err
		}

		switch order.Status(status) {
		case order.Requested:
			stats.Requested = count
		case order.InProgress:
			stats.InProgress = count
		case order.AdvertiserApproval:
			stats.AdvertiserApproval = count
		case order.Completed:
			stats.Completed = count
		case order.Rejected:
			stats.Rejected = count
		}
		stats.Total += count
	}

	if err = rows.Err(); err != nil {
		return GetOrderStatsQueryResponse{}, err
	}

	return stats, nil
}
