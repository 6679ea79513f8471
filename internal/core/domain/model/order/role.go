package order

import (
	"fmt"

	"linkmarket/internal/pkg/errs"
)

// Role identifies which side of the marketplace an actor is on.
// It is a closed enumeration: every request names exactly one of the two
// roles, and the value is validated once at the boundary so the domain
// never compares role strings.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// Advertiser is the buyer party who purchases guest-post or
	// link-insertion services.
	Advertiser

	// Publisher is the seller party who owns the target website and
	// fulfills the order.
	Publisher
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		Advertiser:  "advertiser",
		Publisher:   "publisher",
	}
}

// RoleFromString parses the wire representation of a role.
// Only the exact values "advertiser" and "publisher" are accepted.
func RoleFromString(s string) (Role, error) {
	switch s {
	case "advertiser":
		return Advertiser, nil
	case "publisher":
		return Publisher, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", s))
	}
}

// Validate checks that the Role is one of the two defined roles.
func (r Role) Validate() error {
	if r != Advertiser && r != Publisher {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
