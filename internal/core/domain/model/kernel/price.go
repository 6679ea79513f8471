package kernel

import (
	"fmt"

	"linkmarket/internal/pkg/errs"
)

// Price is a value object representing a service price in integer cents.
// Storing money as integer cents avoids floating point rounding issues.
//
// Price is fixed when an order is placed and never changes afterwards.
// The zero value is invalid; obtain instances via NewPrice.
//
// Example usage:
//
//	price, err := kernel.NewPrice(12500) // $125.00
//	if err != nil {
//	    // handle error
//	}
type Price struct {
	cents int64
}

// NewPrice creates a Price from an amount in cents.
// The amount must be positive: a placed order always costs something.
func NewPrice(cents int64) (Price, error) {
	if cents <= 0 {
		return Price{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d cents is not greater than 0", cents))
	}
	return Price{cents: cents}, nil
}

// Cents returns the amount in integer cents.
func (p Price) Cents() int64 {
	return p.cents
}

// String renders the price as a decimal amount, e.g. "125.00".
func (p Price) String() string {
	return fmt.Sprintf("%d.%02d", p.cents/100, p.cents%100)
}

// IsEqual reports whether two prices represent the same amount.
func (p Price) IsEqual(other Price) bool {
	return p.cents == other.cents
}

// Validate checks that the price was constructed via NewPrice.
// The zero value (0 cents) is invalid.
func (p Price) Validate() error {
	if p.cents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%d cents is not greater than 0", p.cents))
	}
	return nil
}
