package commands

import (
	"context"
	"time"
)

// OverrideJobPriceCommandHandler handles operator price overrides.
// The old and new price are written to the price change log in the same
// transaction as the job row.
type OverrideJobPriceCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewOverrideJobPriceCommandHandler creates a handler for price overrides.
// Requires a JobUoWFactory for transactional persistence.
func NewOverrideJobPriceCommandHandler(uowFactory JobUoWFactory) OverrideJobPriceCommandHandler {
	return OverrideJobPriceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the price override command.
func (h *OverrideJobPriceCommandHandler) Handle(ctx context.Context, cmd OverrideJobPriceCommand) error {
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

	jobRepo := uow.JobRepository()
	aggregate, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = aggregate.OverridePrice(cmd.NewPriceCents(), cmd.ChangedByID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
