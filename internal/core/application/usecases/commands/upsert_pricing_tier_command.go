package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrUpsertPricingTierCommandIsNotConstructed = errors.New(
	"UpsertPricingTierCommand must be created via NewUpsertPricingTierCommand constructor",
)

// UpsertPricingTierCommand represents an operator's request to create or edit
// a pricing tier. Editing a tier never reprices existing jobs.
type UpsertPricingTierCommand struct { //nolint:recvcheck //using for validation
	tier pricing.Tier

	guard guard.ConstructorGuard
}

// NewUpsertPricingTierCommand creates a command to store a pricing tier.
func NewUpsertPricingTierCommand(tier pricing.Tier) (UpsertPricingTierCommand, error) {
	tierCommand := UpsertPricingTierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := tierCommand.setTier(tier); err != nil {
		return UpsertPricingTierCommand{}, err
	}

	return tierCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpsertPricingTierCommand) Validate() error {
	return c.guard.Validate(ErrUpsertPricingTierCommandIsNotConstructed)
}

// Tier returns the tier to store.
func (c UpsertPricingTierCommand) Tier() pricing.Tier {
	return c.tier
}

func (c *UpsertPricingTierCommand) setTier(tier pricing.Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	c.tier = tier
	return nil
}
