package pricing

import (
	"errors"
	"fmt"

	"github.com/tokendad/ApexPlow/internal/pkg/errs"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

// ErrTierIsNotConstructed is returned when validating a Tier that was not
// created via NewTier.
var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier is a priced driveway-size category. A job's quoted price is frozen
// from the tier at creation time; later tier edits never reprice existing
// jobs.
type Tier struct { //nolint:recvcheck //using for validation
	id         int
	label      string
	priceCents int

	guard guard.ConstructorGuard
}

// NewTier creates a Tier with a positive identifier, a non-empty label and a
// positive price.
func NewTier(id int, label string, priceCents int) (Tier, error) {
	t := Tier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setLabel(label),
		t.setPriceCents(priceCents),
	); err != nil {
		return Tier{}, err
	}

	return t, nil
}

// Validate ensures the Tier was created through the constructor.
func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

// ID returns the tier's identifier.
func (t Tier) ID() int {
	return t.id
}

// Label returns the human-readable tier name, e.g. "2-Car Driveway".
func (t Tier) Label() string {
	return t.label
}

// PriceCents returns the tier price in cents.
func (t Tier) PriceCents() int {
	return t.priceCents
}

func (t *Tier) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tierId",
			fmt.Errorf("%d is not greater than 0", id))
	}
	t.id = id
	return nil
}

func (t *Tier) setLabel(label string) error {
	if label == "" {
		return errs.NewValueIsRequiredError("tierLabel")
	}
	t.label = label
	return nil
}

func (t *Tier) setPriceCents(priceCents int) error {
	if priceCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("priceCents",
			fmt.Errorf("%d is not greater than 0", priceCents))
	}
	t.priceCents = priceCents
	return nil
}
