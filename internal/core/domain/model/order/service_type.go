package order

import (
	"fmt"

	"linkmarket/internal/pkg/errs"
)

// ServiceType identifies the kind of service an order was placed for.
// It is fixed at order creation and never re-derived from other fields
// such as the post title.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// GuestPost is a full article written by the advertiser and published
	// on the publisher's website.
	GuestPost

	// LinkInsertion is a link placed into an existing article on the
	// publisher's website.
	LinkInsertion

	// WritingGuestPost is a guest post where the publisher also writes
	// the article content.
	WritingGuestPost
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown: "unknown",
		GuestPost:          "guestPost",
		LinkInsertion:      "linkInsertion",
		WritingGuestPost:   "writingGuestPost",
	}
}

// ServiceTypeFromString parses the wire representation of a service type.
func ServiceTypeFromString(s string) (ServiceType, error) {
	switch s {
	case "guestPost":
		return GuestPost, nil
	case "linkInsertion":
		return LinkInsertion, nil
	case "writingGuestPost":
		return WritingGuestPost, nil
	default:
		return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%q is not a valid service type", s))
	}
}

// Validate checks that the ServiceType is one of the defined types.
func (t ServiceType) Validate() error {
	if t != GuestPost && t != LinkInsertion && t != WritingGuestPost {
		return errs.NewValueIsInvalidErrorWithCause("serviceType",
			fmt.Errorf("%d is not a valid service type", t))
	}
	return nil
}

// String returns the wire representation of the service type.
func (t ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}
