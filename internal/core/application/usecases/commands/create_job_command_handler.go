package commands

import (
	"context"
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/ports"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// ErrOutsideServiceArea is returned when the job site lies beyond the
// operator's configured service radius.
var ErrOutsideServiceArea = errors.New("location is outside the service area")

// CreateJobCommandHandler handles the business logic for job creation.
// Admits the job site against the configured service area, freezes the quoted
// price from the chosen tier, and persists the job in pending status.
type CreateJobCommandHandler struct {
	uowFactory JobConfigUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation operations.
// Requires a JobConfigUoWFactory for transactional persistence.
func NewCreateJobCommandHandler(uowFactory JobConfigUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command.
//
// The quoted price is frozen at creation time: later tier edits never touch
// existing jobs. A missing tier reference prices the job at zero rather than
// failing. When no service area is configured every location is admitted.
func (h *CreateJobCommandHandler) Handle(ctx context.Context, cmd CreateJobCommand) error {
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

	configRepo := uow.ConfigRepository()

	area, err := configRepo.GetActiveServiceArea(ctx)
	if err != nil {
		return err
	}
	if area != nil {
		within, err := area.Contains(cmd.Location())
		if err != nil {
			return err
		}
		if !within {
			return ErrOutsideServiceArea
		}
	}

	quotedPriceCents, err := resolveQuotedPrice(ctx, configRepo, cmd.TierID())
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(
		cmd.JobID(),
		cmd.CustomerID(),
		cmd.Address(),
		cmd.Location(),
		cmd.JobType(),
		cmd.TierID(),
		quotedPriceCents,
		cmd.ScheduledFor(),
		cmd.Source(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if cmd.SpecialInstructions() != nil {
		aggregate.SetSpecialInstructions(cmd.SpecialInstructions())
	}

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// resolveQuotedPrice freezes the job's quoted price from the referenced tier.
// A nil or dangling tier reference prices the job at zero, never an error.
func resolveQuotedPrice(ctx context.Context, configRepo ports.ConfigRepository, tierID *int) (int, error) {
	if tierID == nil {
		return 0, nil
	}

	tier, err := configRepo.GetTier(ctx, *tierID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return tier.PriceCents(), nil
}
