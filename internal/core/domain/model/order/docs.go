// Package order provides domain entities and business logic for the marketplace
// order lifecycle. It implements the Order aggregate root with state transitions
// gated by actor roles.
//
// The package includes:
//   - Order: the aggregate root managing identity, party snapshots, and lifecycle
//   - Status: a state machine enforcing the fixed transition table
//   - Role: the closed advertiser/publisher enumeration
//   - ServiceType: the purchased service kind, fixed at placement
//   - TimelineEntry: one record in the append-only audit trail
//   - Requirements: the advertiser's informational constraints
//   - Party, Website: immutable snapshots of the order's participants
//
// Key business rules:
//   - The workflow is requested -> inProgress -> advertiserApproval -> completed,
//     with rejected reachable as an alternate terminal state
//   - Each transition is triggerable by exactly one role: the publisher accepts,
//     rejects a request, and submits work; the advertiser approves or rejects
//     submitted work
//   - Rejection always records a reason; completion always records a timestamp
//   - Exactly one timeline entry is appended per transition, creation included
//   - Completed and rejected orders admit no further transitions
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
