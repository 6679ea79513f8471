// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Party and website snapshots are denormalized onto the row so that dashboard
// listing and search never join user or website tables. The version column
// backs the optimistic concurrency check on updates.
type OrderDTO struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey"`

	AdvertiserID    uuid.UUID `gorm:"type:uuid;index"`
	AdvertiserName  string
	AdvertiserEmail string

	PublisherID    uuid.UUID `gorm:"type:uuid;index"`
	PublisherName  string
	PublisherEmail string

	WebsiteID     uuid.UUID `gorm:"type:uuid"`
	WebsiteDomain string

	ServiceType int
	PriceCents  int64
	PostTitle   string

	Requirements RequirementsDTO `gorm:"embedded;embeddedPrefix:requirement_"`

	Status          int `gorm:"index"`
	RejectionReason string
	CompletedAt     *time.Time

	Timeline []TimelineEntryDTO `gorm:"foreignKey:OrderID;references:ID"`

	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"autoUpdateTime:false;index"`
	Version   int64
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// RequirementsDTO represents the embedded advertiser requirements within the
// order table. Topic lists are stored as native postgres text arrays.
type RequirementsDTO struct {
	MinWordCount  int
	MaxLinks      int
	TopicsAllowed pq.StringArray `gorm:"type:text[]"`
	TopicsDenied  pq.StringArray `gorm:"type:text[]"`
	Deadline      *time.Time
}

// TimelineEntryDTO represents one row of an order's append-only audit trail.
// The ordinal preserves the order in which transitions were applied; rows are
// only ever inserted, never updated or deleted.
type TimelineEntryDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Ordinal   int       `gorm:"primaryKey"`
	Status    int
	Timestamp time.Time
	Note      string
	UpdatedBy uuid.UUID `gorm:"type:uuid"`
}

// TableName specifies the database table name for timeline entries.
func (TimelineEntryDTO) TableName() string {
	return "order_timeline_entries"
}

// fromDomain converts an order domain aggregate to its database representation,
// timeline included.
func fromDomain(aggregate *order.Order) OrderDTO {
	requirements := aggregate.Requirements()

	dto := OrderDTO{
		ID:              aggregate.ID().Bytes(),
		AdvertiserID:    aggregate.Advertiser().ID().Bytes(),
		AdvertiserName:  aggregate.Advertiser().Name(),
		AdvertiserEmail: aggregate.Advertiser().Email(),
		PublisherID:     aggregate.Publisher().ID().Bytes(),
		PublisherName:   aggregate.Publisher().Name(),
		PublisherEmail:  aggregate.Publisher().Email(),
		WebsiteID:       aggregate.Website().ID().Bytes(),
		WebsiteDomain:   aggregate.Website().Domain(),
		ServiceType:     int(aggregate.ServiceType()),
		PriceCents:      aggregate.Price().Cents(),
		PostTitle:       aggregate.PostTitle(),
		Requirements: RequirementsDTO{
			MinWordCount:  requirements.MinWordCount(),
			MaxLinks:      requirements.MaxLinks(),
			TopicsAllowed: requirements.TopicsAllowed(),
			TopicsDenied:  requirements.TopicsDenied(),
			Deadline:      requirements.Deadline(),
		},
		Status:          int(aggregate.Status()),
		RejectionReason: aggregate.RejectionReason(),
		CompletedAt:     aggregate.CompletedAt(),
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
		Version:         aggregate.Version(),
	}

	for i, entry := range aggregate.Timeline() {
		dto.Timeline = append(dto.Timeline, TimelineEntryDTO{
			OrderID:   dto.ID,
			Ordinal:   i,
			Status:    int(entry.Status()),
			Timestamp: entry.Timestamp(),
			Note:      entry.Note(),
			UpdatedBy: entry.UpdatedBy().Bytes(),
		})
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate using
// RestoreOrder, which re-checks the aggregate's consistency invariants.
// Timeline rows must already be sorted by ordinal.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	advertiserID, err := kernel.UUIDFromBytes(dto.AdvertiserID[:])
	if err != nil {
		return nil, err
	}
	advertiser, err := order.NewParty(advertiserID, dto.AdvertiserName, dto.AdvertiserEmail)
	if err != nil {
		return nil, err
	}

	publisherID, err := kernel.UUIDFromBytes(dto.PublisherID[:])
	if err != nil {
		return nil, err
	}
	publisher, err := order.NewParty(publisherID, dto.PublisherName, dto.PublisherEmail)
	if err != nil {
		return nil, err
	}

	websiteID, err := kernel.UUIDFromBytes(dto.WebsiteID[:])
	if err != nil {
		return nil, err
	}
	website, err := order.NewWebsite(websiteID, dto.WebsiteDomain)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewPrice(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	requirements, err := order.NewRequirements(
		dto.Requirements.MinWordCount,
		dto.Requirements.MaxLinks,
		dto.Requirements.TopicsAllowed,
		dto.Requirements.TopicsDenied,
		dto.Requirements.Deadline,
	)
	if err != nil {
		return nil, err
	}

	timeline := make([]order.TimelineEntry, 0, len(dto.Timeline))
	for _, entryDTO := range dto.Timeline {
		updatedBy, entryErr := kernel.UUIDFromBytes(entryDTO.UpdatedBy[:])
		if entryErr != nil {
			return nil, entryErr
		}
		entry, entryErr := order.NewTimelineEntry(
			order.Status(entryDTO.Status),
			entryDTO.Timestamp,
			entryDTO.Note,
			updatedBy,
		)
		if entryErr != nil {
			return nil, entryErr
		}
		timeline = append(timeline, entry)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		Advertiser:      advertiser,
		Publisher:       publisher,
		Website:         website,
		ServiceType:     order.ServiceType(dto.ServiceType),
		Price:           price,
		PostTitle:       dto.PostTitle,
		Requirements:    requirements,
		Status:          order.Status(dto.Status),
		RejectionReason: dto.RejectionReason,
		CompletedAt:     dto.CompletedAt,
		Timeline:        timeline,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
		Version:         dto.Version,
	})
}
