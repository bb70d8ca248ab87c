package commands

import (
	"context"
)

// ConfigureServiceAreaCommandHandler stores the operator's service area.
type ConfigureServiceAreaCommandHandler struct {
	uowFactory ConfigUoWFactory
}

// NewConfigureServiceAreaCommandHandler creates a handler for service area updates.
// Requires a ConfigUoWFactory for transactional persistence.
func NewConfigureServiceAreaCommandHandler(uowFactory ConfigUoWFactory) ConfigureServiceAreaCommandHandler {
	return ConfigureServiceAreaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the service area update command.
func (h *ConfigureServiceAreaCommandHandler) Handle(ctx context.Context, cmd ConfigureServiceAreaCommand) error {
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

	if err := uow.ConfigRepository().SaveServiceArea(ctx, cmd.Area()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
