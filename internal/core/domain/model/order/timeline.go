package order

import (
	"time"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/pkg/errs"
)

// TimelineEntry is one record in an order's append-only audit trail.
// Exactly one entry is written per transition, including the creation of the
// order itself; entries are never mutated or reordered.
type TimelineEntry struct {
	status    Status
	timestamp time.Time
	note      string
	updatedBy kernel.UUID
}

// NewTimelineEntry creates a timeline entry with validation.
// The note may be empty; status, timestamp, and actor are mandatory.
func NewTimelineEntry(status Status, timestamp time.Time, note string, updatedBy kernel.UUID) (TimelineEntry, error) {
	if err := status.Validate(); err != nil {
		return TimelineEntry{}, err
	}
	if timestamp.IsZero() {
		return TimelineEntry{}, errs.NewValueIsRequiredError("timeline entry timestamp")
	}
	if err := updatedBy.Validate(); err != nil {
		return TimelineEntry{}, err
	}

	return TimelineEntry{
		status:    status,
		timestamp: timestamp,
		note:      note,
		updatedBy: updatedBy,
	}, nil
}

// Status returns the status the order entered when this entry was written.
func (e TimelineEntry) Status() Status {
	return e.status
}

// Timestamp returns when the transition was applied.
func (e TimelineEntry) Timestamp() time.Time {
	return e.timestamp
}

// Note returns the free-text note recorded with the transition.
func (e TimelineEntry) Note() string {
	return e.note
}

// UpdatedBy returns the identifier of the actor who triggered the transition.
func (e TimelineEntry) UpdatedBy() kernel.UUID {
	return e.updatedBy
}

// Validate ensures the entry was created via NewTimelineEntry.
func (e TimelineEntry) Validate() error {
	if err := e.status.Validate(); err != nil {
		return err
	}
	if e.timestamp.IsZero() {
		return errs.NewValueIsRequiredError("timeline entry timestamp")
	}
	return e.updatedBy.Validate()
}
