package order

import (
	"errors"
	"strings"
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrSamePartyOnBothSides is returned when the advertiser and publisher
	// snapshots reference the same user.
	ErrSamePartyOnBothSides = errors.New("advertiser and publisher must be different users")
)

// Order represents a purchased service instance in the marketplace. It is the
// aggregate root that manages the order lifecycle from placement through
// fulfillment to completion or rejection.
//
// Order follows these invariants:
//   - Advertiser, publisher, website, service type, and price are immutable after creation
//   - Status is always one of the five defined states and changes only via Transition
//   - The timeline is append-only: one entry per transition, creation included,
//     and the last entry's status always equals the current status
//   - The rejection reason is set if and only if the order is rejected
//   - CompletedAt is set if and only if the order is completed, and never changes
//   - Can only be created through NewOrder or RestoreOrder
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// advertiser is the buyer party snapshot (immutable)
	advertiser Party

	// publisher is the seller party snapshot (immutable)
	publisher Party

	// website is the target website snapshot (immutable)
	website Website

	// serviceType is the purchased service kind (immutable)
	serviceType ServiceType

	// price is the agreed price, fixed at placement (immutable)
	price kernel.Price

	// postTitle is the working title of the post; may be empty for link insertions
	postTitle string

	// requirements carries the advertiser's informational constraints
	requirements Requirements

	// status is the current lifecycle state
	status Status

	// rejectionReason is set only when status is Rejected
	rejectionReason string

	// completedAt is set only when status is Completed
	completedAt *time.Time

	// timeline is the append-only audit trail, oldest entry first
	timeline []TimelineEntry

	createdAt time.Time
	updatedAt time.Time

	// version supports optimistic concurrency control in the store
	version int64

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in the Requested status. This is the entry point
// of the lifecycle: an advertiser converts a cart item into a placed order
// against a specific publisher's website service.
//
// The timeline is seeded with the creation entry, attributed to the advertiser,
// so that the number of timeline entries always equals the number of applied
// transitions including creation.
//
// Returns a validation error if any snapshot or value is invalid, or if the
// advertiser and publisher reference the same user.
func NewOrder(
	id kernel.UUID,
	advertiser Party,
	publisher Party,
	website Website,
	serviceType ServiceType,
	price kernel.Price,
	postTitle string,
	requirements Requirements,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		advertiser.Validate(),
		publisher.Validate(),
		website.Validate(),
		serviceType.Validate(),
		price.Validate(),
	); err != nil {
		return nil, err
	}

	if advertiser.ID().IsEqual(publisher.ID()) {
		return nil, ErrSamePartyOnBothSides
	}

	now := time.Now().UTC()
	creationEntry, err := NewTimelineEntry(Requested, now, "order placed", advertiser.ID())
	if err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		advertiser:    advertiser,
		publisher:     publisher,
		website:       website,
		serviceType:   serviceType,
		price:         price,
		postTitle:     postTitle,
		requirements:  requirements,
		status:        Requested,
		timeline:      []TimelineEntry{creationEntry},
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreOrderParams carries the persisted state needed to rehydrate an Order.
type RestoreOrderParams struct {
	ID              kernel.UUID
	Advertiser      Party
	Publisher       Party
	Website         Website
	ServiceType     ServiceType
	Price           kernel.Price
	PostTitle       string
	Requirements    Requirements
	Status          Status
	RejectionReason string
	CompletedAt     *time.Time
	Timeline        []TimelineEntry
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int64
}

// RestoreOrder reconstructs an Order from persistence, re-checking the
// aggregate's consistency invariants so that corrupt rows never become
// live aggregates:
//   - the timeline is non-empty and its last entry matches the current status
//   - the rejection reason is present exactly when the order is rejected
//   - the completion timestamp is present exactly when the order is completed
func RestoreOrder(params RestoreOrderParams) (*Order, error) {
	if err := errors.Join(
		params.ID.Validate(),
		params.Advertiser.Validate(),
		params.Publisher.Validate(),
		params.Website.Validate(),
		params.ServiceType.Validate(),
		params.Price.Validate(),
		params.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if len(params.Timeline) == 0 {
		return nil, errs.NewValueIsRequiredError("timeline")
	}
	if last := params.Timeline[len(params.Timeline)-1]; last.Status() != params.Status {
		return nil, errs.NewValueIsInvalidErrorWithCause("timeline",
			errors.New("last timeline entry does not match order status"))
	}

	if (params.Status == Rejected) != (params.RejectionReason != "") {
		return nil, errs.NewValueIsInvalidErrorWithCause("rejectionReason",
			errors.New("rejection reason must be set exactly when the order is rejected"))
	}
	if (params.Status == Completed) != (params.CompletedAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause("completedAt",
			errors.New("completion timestamp must be set exactly when the order is completed"))
	}

	if params.Version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause("version",
			errors.New("version must be at least 1"))
	}

	timeline := make([]TimelineEntry, len(params.Timeline))
	copy(timeline, params.Timeline)

	return &Order{
		id:              params.ID,
		advertiser:      params.Advertiser,
		publisher:       params.Publisher,
		website:         params.Website,
		serviceType:     params.ServiceType,
		price:           params.Price,
		postTitle:       params.PostTitle,
		requirements:    params.Requirements,
		status:          params.Status,
		rejectionReason: params.RejectionReason,
		completedAt:     params.CompletedAt,
		timeline:        timeline,
		createdAt:       params.CreatedAt,
		updatedAt:       params.UpdatedAt,
		version:         params.Version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Advertiser returns the buyer party snapshot.
func (o *Order) Advertiser() Party {
	return o.advertiser
}

// Publisher returns the seller party snapshot.
func (o *Order) Publisher() Party {
	return o.publisher
}

// Website returns the target website snapshot.
func (o *Order) Website() Website {
	return o.website
}

// ServiceType returns the purchased service kind.
func (o *Order) ServiceType() ServiceType {
	return o.serviceType
}

// Price returns the agreed price.
func (o *Order) Price() kernel.Price {
	return o.price
}

// PostTitle returns the working title of the post.
func (o *Order) PostTitle() string {
	return o.postTitle
}

// Requirements returns the advertiser's informational constraints.
func (o *Order) Requirements() Requirements {
	return o.requirements
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// RejectionReason returns the recorded reason when the order is rejected,
// and the empty string otherwise.
func (o *Order) RejectionReason() string {
	return o.rejectionReason
}

// CompletedAt returns the completion timestamp when the order is completed,
// and nil otherwise.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// Timeline returns a copy of the append-only audit trail, oldest entry first.
func (o *Order) Timeline() []TimelineEntry {
	timeline := make([]TimelineEntry, len(o.timeline))
	copy(timeline, o.timeline)
	return timeline
}

// CreatedAt returns when the order was placed.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency version loaded from the store.
func (o *Order) Version() int64 {
	return o.version
}

// Party returns the snapshot matching the given role: the advertiser for
// Advertiser, the publisher for Publisher.
func (o *Order) Party(role Role) (Party, error) {
	switch role {
	case Advertiser:
		return o.advertiser, nil
	case Publisher:
		return o.publisher, nil
	default:
		return Party{}, errs.NewValueIsInvalidError("role")
	}
}

// Counterpart returns the snapshot of the party opposite the given role.
// Used to pick the notification recipient after a transition.
func (o *Order) Counterpart(role Role) (Party, error) {
	switch role {
	case Advertiser:
		return o.publisher, nil
	case Publisher:
		return o.advertiser, nil
	default:
		return Party{}, errs.NewValueIsInvalidError("role")
	}
}

// Transition applies a status change requested by an actor. This is the only
// path by which the status, the derived fields, and the timeline change.
//
// The checks run in this order:
//  1. The actor must be the order's own advertiser or publisher, matching
//     the claimed role; any mismatch fails with an ActorForbiddenError.
//  2. The (current, target) pair must be in the legal transition table;
//     otherwise an InvalidTransitionError is returned. No-op transitions are
//     always invalid, never a silent success, so duplicate client
//     submissions are not misread as confirmations.
//  3. The table's required role must equal the actor's role; a legal pair
//     attempted by the other party fails with an ActorForbiddenError.
//  4. Rejections require a non-blank rejection reason.
//
// On success the status changes, derived fields are set (completedAt for
// Completed, rejectionReason for Rejected), and exactly one timeline entry is
// appended. When note is blank, a default note describing the transition is
// recorded.
func (o *Order) Transition(actorID kernel.UUID, role Role, target Status, note string, rejectionReason string) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}

	party, err := o.Party(role)
	if err != nil {
		return err
	}
	if !party.ID().IsEqual(actorID) {
		return errs.NewActorForbiddenErrorWithCause(actorID.String(), role.String(),
			errors.New("actor is not the order's "+role.String()))
	}

	requiredRole, err := o.status.TransitionRole(target)
	if err != nil {
		return err
	}
	if requiredRole != role {
		return errs.NewActorForbiddenError(actorID.String(), requiredRole.String())
	}

	if target == Rejected && strings.TrimSpace(rejectionReason) == "" {
		return errs.NewValueIsRequiredError("rejectionReason")
	}

	now := time.Now().UTC()
	if note == "" {
		note = defaultTransitionNote(target)
	}

	entry, err := NewTimelineEntry(target, now, note, actorID)
	if err != nil {
		return err
	}

	o.status = target
	switch target {
	case Completed:
		o.completedAt = &now
	case Rejected:
		o.rejectionReason = rejectionReason
	}
	o.timeline = append(o.timeline, entry)
	o.updatedAt = now

	return nil
}

// defaultTransitionNote returns the note recorded when the caller provides none.
func defaultTransitionNote(target Status) string {
	switch target {
	case InProgress:
		return "accepted"
	case AdvertiserApproval:
		return "submitted for approval"
	case Completed:
		return "approved"
	case Rejected:
		return "rejected"
	default:
		return ""
	}
}
