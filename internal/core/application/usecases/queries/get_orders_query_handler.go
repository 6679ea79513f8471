package queries

import (
	"context"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves a party's order dashboard from the database.
// Reads the denormalized order rows directly; the domain aggregate and its
// timeline are never loaded on the read side.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order dashboard queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the dashboard query. Results are scoped to the orders where
// the actor is the party matching the queried role, optionally narrowed by
// status and by a case-insensitive search over the counterpart's name and
// email, the website domain, and the post title. Newest orders come first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	scopeColumn := "advertiser_id"
	counterpartName := "publisher_name"
	counterpartEmail := "publisher_email"
	if query.Role() == order.Publisher {
		scopeColumn = "publisher_id"
		counterpartName = "advertiser_name"
		counterpartEmail = "advertiser_email"
	}

	sql := `
		SELECT
			id,
			status,
			service_type,
			price_cents,
			post_title,
			` + counterpartName + `,
			` + counterpartEmail + `,
			website_domain,
			rejection_reason,
			completed_at,
			created_at,
			updated_at
		FROM orders
		WHERE ` + scopeColumn + ` = ?`
	args := []any{query.ActorID().Bytes()}

	if query.HasStatusFilter() {
		sql += ` AND status = ?`
		args = append(args, int(query.StatusFilter()))
	}

	if query.Search() != "" {
		pattern := "%" + query.Search() + "%"
		sql += ` AND (` + counterpartName + ` ILIKE ? OR ` + counterpartEmail + ` ILIKE ?` +
			` OR website_domain ILIKE ? OR post_title ILIKE ?)`
		args = append(args, pattern, pattern, pattern, pattern)
	}

	sql += `
		ORDER BY created_at DESC`

	orders := make([]GetOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var status, serviceType int
		var completedAt *time.Time

		err = rows.Scan(
			&id,
			&status,
			&serviceType,
			&resp.PriceCents,
			&resp.PostTitle,
			&resp.CounterpartName,
			&resp.CounterpartEmail,
			&resp.WebsiteDomain,
			&resp.RejectionReason,
			&completedAt,
			&resp.CreatedAt,
			&resp.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		resp.Status = order.Status(status).String()
		resp.ServiceType = order.ServiceType(serviceType).String()
		resp.CompletedAt = completedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
