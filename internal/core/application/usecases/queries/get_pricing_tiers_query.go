package queries

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrGetPricingTiersQueryIsNotConstructed = errors.New(
	"GetPricingTiersQuery must be created via NewGetPricingTiersQuery constructor",
)

// GetPricingTiersQuery retrieves the active driveway pricing tiers shown on
// the request form.
type GetPricingTiersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPricingTiersQuery creates a query for the active tiers.
func NewGetPricingTiersQuery() GetPricingTiersQuery {
	return GetPricingTiersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPricingTiersQuery) Validate() error {
	return q.guard.Validate(ErrGetPricingTiersQueryIsNotConstructed)
}

// GetPricingTiersQueryResponse is one selectable tier.
type GetPricingTiersQueryResponse struct {
	ID         int
	Label      string
	PriceCents int
}
