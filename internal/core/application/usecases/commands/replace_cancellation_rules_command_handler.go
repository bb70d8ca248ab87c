package commands

import (
	"context"
)

// ReplaceCancellationRulesCommandHandler stores cancellation rule table edits.
type ReplaceCancellationRulesCommandHandler struct {
	uowFactory ConfigUoWFactory
}

// NewReplaceCancellationRulesCommandHandler creates a handler for rule updates.
// Requires a ConfigUoWFactory for transactional persistence.
func NewReplaceCancellationRulesCommandHandler(uowFactory ConfigUoWFactory) ReplaceCancellationRulesCommandHandler {
	return ReplaceCancellationRulesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rule replacement command. The delete and the insert of
// the new set happen in one transaction, so readers never see a partial table.
func (h *ReplaceCancellationRulesCommandHandler) Handle(ctx context.Context, cmd ReplaceCancellationRulesCommand) error {
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

	if err := uow.ConfigRepository().ReplaceCancellationRules(ctx, cmd.Rules()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
