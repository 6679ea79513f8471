package order

import (
	"fmt"
	"time"

	"linkmarket/internal/pkg/errs"
)

// Requirements carries the advertiser's structured constraints for the work:
// minimum word count, maximum outgoing links, topic allow/deny lists, and an
// optional deadline. Requirements are informational only; the state machine
// never enforces them.
//
// The zero value is a valid "no requirements" marker.
type Requirements struct {
	minWordCount  int
	maxLinks      int
	topicsAllowed []string
	topicsDenied  []string
	deadline      *time.Time
}

// NewRequirements creates a Requirements value with validation.
// Counts must be non-negative; zero means "no constraint".
func NewRequirements(
	minWordCount int,
	maxLinks int,
	topicsAllowed []string,
	topicsDenied []string,
	deadline *time.Time,
) (Requirements, error) {
	if minWordCount < 0 {
		return Requirements{}, errs.NewValueIsInvalidErrorWithCause("minWordCount",
			fmt.Errorf("%d is negative", minWordCount))
	}
	if maxLinks < 0 {
		return Requirements{}, errs.NewValueIsInvalidErrorWithCause("maxLinks",
			fmt.Errorf("%d is negative", maxLinks))
	}

	return Requirements{
		minWordCount:  minWordCount,
		maxLinks:      maxLinks,
		topicsAllowed: copyStrings(topicsAllowed),
		topicsDenied:  copyStrings(topicsDenied),
		deadline:      deadline,
	}, nil
}

// MinWordCount returns the minimum word count, or 0 for no constraint.
func (r Requirements) MinWordCount() int {
	return r.minWordCount
}

// MaxLinks returns the maximum number of outgoing links, or 0 for no constraint.
func (r Requirements) MaxLinks() int {
	return r.maxLinks
}

// TopicsAllowed returns a copy of the topic allow list.
func (r Requirements) TopicsAllowed() []string {
	return copyStrings(r.topicsAllowed)
}

// TopicsDenied returns a copy of the topic deny list.
func (r Requirements) TopicsDenied() []string {
	return copyStrings(r.topicsDenied)
}

// Deadline returns the fulfillment deadline, or nil if none was set.
func (r Requirements) Deadline() *time.Time {
	return r.deadline
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
