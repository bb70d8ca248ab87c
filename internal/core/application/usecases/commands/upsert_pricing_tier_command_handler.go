package commands

import (
	"context"
)

// UpsertPricingTierCommandHandler stores pricing tier edits.
type UpsertPricingTierCommandHandler struct {
	uowFactory ConfigUoWFactory
}

// NewUpsertPricingTierCommandHandler creates a handler for tier updates.
// Requires a ConfigUoWFactory for transactional persistence.
func NewUpsertPricingTierCommandHandler(uowFactory ConfigUoWFactory) UpsertPricingTierCommandHandler {
	return UpsertPricingTierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the tier upsert command. Existing jobs keep the quote
// frozen at their creation time; only new jobs see the edited price.
func (h *UpsertPricingTierCommandHandler) Handle(ctx context.Context, cmd UpsertPricingTierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ConfigRepository().SaveTier(ctx, cmd.Tier()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
