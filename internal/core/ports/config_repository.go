package ports

import (
	"context"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
)

// ConfigRepository defines the contract for dispatch configuration:
// pricing tiers, the cancellation rule table, and the service area.
// Configuration is read in full on each call; the domain never caches it.
type ConfigRepository interface {
	// GetTier retrieves a pricing tier by id.
	GetTier(ctx context.Context, id int) (pricing.Tier, error)

	// GetActiveTiers retrieves every active pricing tier ordered by price.
	GetActiveTiers(ctx context.Context) ([]pricing.Tier, error)

	// GetCancellationRules retrieves the full cancellation rule table.
	GetCancellationRules(ctx context.Context) ([]pricing.CancellationRule, error)

	// GetActiveServiceArea retrieves the operator's configured service area.
	// Returns nil without error when no area has been configured; callers
	// treat a missing area as "accept everywhere".
	GetActiveServiceArea(ctx context.Context) (*kernel.ServiceArea, error)

	// SaveServiceArea replaces the operator's configured service area.
	SaveServiceArea(ctx context.Context, area kernel.ServiceArea) error

	// SaveTier creates or updates a pricing tier. Editing a tier never
	// reprices existing jobs; quotes are frozen at creation time.
	SaveTier(ctx context.Context, tier pricing.Tier) error

	// ReplaceCancellationRules swaps the full cancellation rule table for
	// the given set. Rules are edited as a unit, never row by row.
	ReplaceCancellationRules(ctx context.Context, rules []pricing.CancellationRule) error
}
