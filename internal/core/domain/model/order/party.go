package order

import (
	"errors"

	"linkmarket/internal/core/domain/model/kernel"
	"linkmarket/internal/pkg/errs"
)

// Party is an immutable snapshot of one side of the order: the advertiser
// or the publisher. Name and email are captured at placement so that
// dashboards can list and search orders without joining user tables, and so
// the order's history keeps the identity it was placed under.
type Party struct {
	id    kernel.UUID
	name  string
	email string
}

// NewParty creates a party snapshot with validation.
func NewParty(id kernel.UUID, name string, email string) (Party, error) {
	if err := id.Validate(); err != nil {
		return Party{}, err
	}
	if name == "" {
		return Party{}, errs.NewValueIsRequiredError("party name")
	}
	if email == "" {
		return Party{}, errs.NewValueIsRequiredError("party email")
	}

	return Party{id: id, name: name, email: email}, nil
}

// ID returns the party's user identifier.
func (p Party) ID() kernel.UUID {
	return p.id
}

// Name returns the party's display name at the time the order was placed.
func (p Party) Name() string {
	return p.name
}

// Email returns the party's email at the time the order was placed.
func (p Party) Email() string {
	return p.email
}

// Validate ensures the party snapshot was created via NewParty.
func (p Party) Validate() error {
	if err := p.id.Validate(); err != nil {
		return err
	}
	if p.name == "" || p.email == "" {
		return errs.NewValueIsRequiredErrorWithCause("party",
			errors.New("party must be created via NewParty"))
	}
	return nil
}

// Website is an immutable snapshot of the website the order targets.
type Website struct {
	id     kernel.UUID
	domain string
}

// NewWebsite creates a website snapshot with validation.
func NewWebsite(id kernel.UUID, domain string) (Website, error) {
	if err := id.Validate(); err != nil {
		return Website{}, err
	}
	if domain == "" {
		return Website{}, errs.NewValueIsRequiredError("website domain")
	}

	return Website{id: id, domain: domain}, nil
}

// ID returns the website identifier.
func (w Website) ID() kernel.UUID {
	return w.id
}

// Domain returns the website's domain name at the time the order was placed.
func (w Website) Domain() string {
	return w.domain
}

// Validate ensures the website snapshot was created via NewWebsite.
func (w Website) Validate() error {
	if err := w.id.Validate(); err != nil {
		return err
	}
	if w.domain == "" {
		return errs.NewValueIsRequiredErrorWithCause("website",
			errors.New("website must be created via NewWebsite"))
	}
	return nil
}
