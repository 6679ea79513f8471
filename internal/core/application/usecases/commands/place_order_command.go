package commands

import (
	"errors"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/core/domain/model/order"
	"linkmarket/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents an advertiser's request to convert a cart item
// into a placed order against a specific publisher's website service.
// Party and website snapshots are captured here and stay immutable on the
// order for its entire lifetime.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	advertiser   order.Party
	publisher    order.Party
	website      order.Website
	serviceType  order.ServiceType
	price        kernel.Price
	postTitle    string
	requirements order.Requirements

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// All identifiers and snapshots must be valid; the post title may be empty.
func NewPlaceOrderCommand(
	orderID kernel.UUID,
	advertiser order.Party,
	publisher order.Party,
	website order.Website,
	serviceType order.ServiceType,
	price kernel.Price,
	postTitle string,
	requirements order.Requirements,
) (PlaceOrderCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		advertiser.Validate(),
		publisher.Validate(),
		website.Validate(),
		serviceType.Validate(),
		price.Validate(),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID:      orderID,
		advertiser:   advertiser,
		publisher:    publisher,
		website:      website,
		serviceType:  serviceType,
		price:        price,
		postTitle:    postTitle,
		requirements: requirements,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Advertiser returns the buyer party snapshot.
func (c PlaceOrderCommand) Advertiser() order.Party {
	return c.advertiser
}

// Publisher returns the seller party snapshot.
func (c PlaceOrderCommand) Publisher() order.Party {
	return c.publisher
}

// Website returns the target website snapshot.
func (c PlaceOrderCommand) Website() order.Website {
	return c.website
}

// ServiceType returns the purchased service kind.
func (c PlaceOrderCommand) ServiceType() order.ServiceType {
	return c.serviceType
}

// Price returns the agreed price.
func (c PlaceOrderCommand) Price() kernel.Price {
	return c.price
}

// PostTitle returns the working title of the post.
func (c PlaceOrderCommand) PostTitle() string {
	return c.postTitle
}

// Requirements returns the advertiser's informational constraints.
func (c PlaceOrderCommand) Requirements() order.Requirements {
	return c.requirements
}
