package order

import (
	"fmt"

	"linkmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed transition table; each legal
// transition is additionally gated by the role allowed to trigger it.
//
// State transitions:
//
//	requested ──> inProgress ──> advertiserApproval ──> completed
//	    │                               │
//	    └──────────> rejected <─────────┘
//
// completed and rejected are terminal: no transition leaves either state.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Requested is the initial status when an advertiser places an order.
	// The publisher has not yet accepted or rejected it.
	Requested

	// InProgress indicates the publisher accepted the order and is
	// working on fulfillment.
	InProgress

	// AdvertiserApproval indicates the publisher submitted the finished
	// work and the advertiser must approve or reject it.
	AdvertiserApproval

	// Completed indicates the advertiser approved the work.
	// This is a terminal state.
	Completed

	// Rejected indicates one of the parties declined the order.
	// This is a terminal state; a rejection reason is always recorded.
	Rejected
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:      "unknown",
		Requested:          "requested",
		InProgress:         "inProgress",
		AdvertiserApproval: "advertiserApproval",
		Completed:          "completed",
		Rejected:           "rejected",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Requested:          "requested",
		InProgress:         "inProgress",
		AdvertiserApproval: "advertiserApproval",
		Completed:          "completed",
		Rejected:           "rejected",
	}
}

// statusTransition is a (from, to) pair in the legal transition table.
type statusTransition struct {
	from Status
	to   Status
}

// getTransitionRoles returns the legal transition table: each entry maps a
// (from, to) pair to the single role allowed to trigger it. Pairs absent
// from the map, including no-op pairs and anything leaving a terminal
// state, are illegal for every actor.
func getTransitionRoles() map[statusTransition]Role {
	return map[statusTransition]Role{
		{from: Requested, to: InProgress}:          Publisher,
		{from: Requested, to: Rejected}:            Publisher,
		{from: InProgress, to: AdvertiserApproval}: Publisher,
		{from: AdvertiserApproval, to: Completed}:  Advertiser,
		{from: AdvertiserApproval, to: Rejected}:   Advertiser,
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five defined states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Invalid values render as "unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status admits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Rejected
}

// TransitionRole returns the role allowed to move an order from the current
// status to target.
//
// Returns an InvalidTransitionError when the (current, target) pair is not
// in the legal transition table. This includes:
//   - no-op transitions (target equals the current status)
//   - any transition out of a terminal state
//   - any pair simply not defined by the workflow
//
// The caller is responsible for comparing the returned role against the
// acting party's role; a legal pair attempted by the wrong role is a
// permission failure, not a transition failure.
func (s Status) TransitionRole(target Status) (Role, error) {
	role, ok := getTransitionRoles()[statusTransition{from: s, to: target}]
	if !ok {
		return RoleUnknown, errs.NewInvalidTransitionError(s.String(), target.String())
	}
	return role, nil
}
