package commands

import (
	"errors"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a party's request to move an order to a
// new lifecycle status. The actor's identity and role come from the
// authenticated session at the boundary; whether this actor may perform this
// particular transition is decided by the aggregate, not here.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, actorID, order.Publisher, order.InProgress, "", "")
//	if err != nil {
//	    return err
//	}
//
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	actorID         kernel.UUID
	actorRole       order.Role
	targetStatus    order.Status
	note            string
	rejectionReason string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// Identifiers, role, and target status must be valid enum values; the
// rejection reason is only checked by the aggregate when actually rejecting.
func NewChangeOrderStatusCommand(
	orderID kernel.UUID,
	actorID kernel.UUID,
	actorRole order.Role,
	targetStatus order.Status,
	note string,
	rejectionReason string,
) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
		targetStatus.Validate(),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:         orderID,
		actorID:         actorID,
		actorRole:       actorRole,
		targetStatus:    targetStatus,
		note:            note,
		rejectionReason: rejectionReason,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ActorID returns the identifier of the acting party.
func (c ChangeOrderStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role the actor is acting under.
func (c ChangeOrderStatusCommand) ActorRole() order.Role {
	return c.actorRole
}

// TargetStatus returns the requested lifecycle status.
func (c ChangeOrderStatusCommand) TargetStatus() order.Status {
	return c.targetStatus
}

// Note returns the free-text note to record with the transition.
func (c ChangeOrderStatusCommand) Note() string {
	return c.note
}

// RejectionReason returns the reason given when rejecting.
func (c ChangeOrderStatusCommand) RejectionReason() string {
	return c.rejectionReason
}
