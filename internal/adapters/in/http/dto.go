package http

import (
	"time"

	"linkmarket/internal/core/domain/model/order"
)

// Error is the JSON error body returned by all endpoints.
// Retryable marks conflicts a client can resolve by re-reading the order
// and resubmitting.
type Error struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable,omitempty"`
}

// PartyRequest identifies one side of a new order.
type PartyRequest struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WebsiteRequest identifies the website the order targets.
type WebsiteRequest struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// RequirementsRequest carries the advertiser's constraints for the work.
// The deadline, when present, is an RFC 3339 timestamp.
type RequirementsRequest struct {
	MinWordCount  int      `json:"minWordCount"`
	MaxLinks      int      `json:"maxLinks"`
	TopicsAllowed []string `json:"topicsAllowed"`
	TopicsDenied  []string `json:"topicsDenied"`
	Deadline      string   `json:"deadline,omitempty"`
}

// PlaceOrderRequest is the body of POST /api/v1/orders.
type PlaceOrderRequest struct {
	Advertiser   PartyRequest        `json:"advertiser"`
	Publisher    PartyRequest        `json:"publisher"`
	Website      WebsiteRequest      `json:"website"`
	ServiceType  string              `json:"serviceType"`
	PriceCents   int64               `json:"priceCents"`
	PostTitle    string              `json:"postTitle"`
	Requirements RequirementsRequest `json:"requirements"`
}

// ChangeOrderStatusRequest is the body of POST /api/v1/orders/{id}/status.
// The rejection reason is required when the target status is rejected.
type ChangeOrderStatusRequest struct {
	TargetStatus    string `json:"targetStatus"`
	Note            string `json:"note,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`
}

// PartyResponse is a party snapshot as rendered on the wire.
type PartyResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// WebsiteResponse is a website snapshot as rendered on the wire.
type WebsiteResponse struct {
	ID     string `json:"id"`
	Domain string `json:"domain"`
}

// RequirementsResponse mirrors RequirementsRequest on the way out.
type RequirementsResponse struct {
	MinWordCount  int        `json:"minWordCount"`
	MaxLinks      int        `json:"maxLinks"`
	TopicsAllowed []string   `json:"topicsAllowed,omitempty"`
	TopicsDenied  []string   `json:"topicsDenied,omitempty"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// TimelineEntryResponse is one audit trail record of an order.
type TimelineEntryResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note,omitempty"`
	UpdatedBy string    `json:"updatedBy"`
}

// OrderResponse is the full representation of an order, timeline included.
type OrderResponse struct {
	ID              string                  `json:"id"`
	Advertiser      PartyResponse           `json:"advertiser"`
	Publisher       PartyResponse           `json:"publisher"`
	Website         WebsiteResponse         `json:"website"`
	ServiceType     string                  `json:"serviceType"`
	PriceCents      int64                   `json:"priceCents"`
	PostTitle       string                  `json:"postTitle,omitempty"`
	Requirements    RequirementsResponse    `json:"requirements"`
	Status          string                  `json:"status"`
	RejectionReason string                  `json:"rejectionReason,omitempty"`
	CompletedAt     *time.Time              `json:"completedAt,omitempty"`
	Timeline        []TimelineEntryResponse `json:"timeline"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
	Version         int64                   `json:"version"`
}

// OrderListItem is one row of a party's order dashboard.
type OrderListItem struct {
	ID               string     `json:"id"`
	Status           string     `json:"status"`
	ServiceType      string     `json:"serviceType"`
	PriceCents       int64      `json:"priceCents"`
	PostTitle        string     `json:"postTitle,omitempty"`
	CounterpartName  string     `json:"counterpartName"`
	CounterpartEmail string     `json:"counterpartEmail"`
	WebsiteDomain    string     `json:"websiteDomain"`
	RejectionReason  string     `json:"rejectionReason,omitempty"`
	CompletedAt      *time.Time `json:"completedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// OrderStatsResponse is the dashboard summary of order counts per status.
type OrderStatsResponse struct {
	Total              int64 `json:"total"`
	Requested          int64 `json:"requested"`
	InProgress         int64 `json:"inProgress"`
	AdvertiserApproval int64 `json:"advertiserApproval"`
	Completed          int64 `json:"completed"`
	Rejected           int64 `json:"rejected"`
}

// orderResponseFrom renders a domain order for the wire.
func orderResponseFrom(o *order.Order) OrderResponse {
	requirements := o.Requirements()

	timeline := make([]TimelineEntryResponse, 0, len(o.Timeline()))
	for _, entry := range o.Timeline() {
		timeline = append(timeline, TimelineEntryResponse{
			Status:    entry.Status().String(),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
			UpdatedBy: entry.UpdatedBy().String(),
		})
	}

	return OrderResponse{
		ID: o.ID().String(),
		Advertiser: PartyResponse{
			ID:    o.Advertiser().ID().String(),
			Name:  o.Advertiser().Name(),
			Email: o.Advertiser().Email(),
		},
		Publisher: PartyResponse{
			ID:    o.Publisher().ID().String(),
			Name:  o.Publisher().Name(),
			Email: o.Publisher().Email(),
		},
		Website: WebsiteResponse{
			ID:     o.Website().ID().String(),
			Domain: o.Website().Domain(),
		},
		ServiceType: o.ServiceType().String(),
		PriceCents:  o.Price().Cents(),
		PostTitle:   o.PostTitle(),
		Requirements: RequirementsResponse{
			MinWordCount:  requirements.MinWordCount(),
			MaxLinks:      requirements.MaxLinks(),
			TopicsAllowed: requirements.TopicsAllowed(),
			TopicsDenied:  requirements.TopicsDenied(),
			Deadline:      requirements.Deadline(),
		},
		Status:          o.Status().String(),
		RejectionReason: o.RejectionReason(),
		CompletedAt:     o.CompletedAt(),
		Timeline:        timeline,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Version:         o.Version(),
	}
}
