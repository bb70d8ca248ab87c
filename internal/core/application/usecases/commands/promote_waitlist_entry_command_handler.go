package commands

import (
	"context"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
)

// PromoteWaitlistEntryCommandHandler converts a waiting entry into a live
// job, exactly once per entry.
//
// Two guards keep concurrent promotions of the same entry from both
// succeeding: the aggregate rejects Promote on a non-waiting entry when the
// loaded snapshot already lost the race, and the repository applies the
// status change as a compare-and-swap against the stored row, so a race lost
// after the snapshot was read fails at write time. Either way the caller gets
// an AlreadyPromotedError and the transaction rolls back without creating a
// job.
type PromoteWaitlistEntryCommandHandler struct {
	uowFactory UoWFactory
}

// NewPromoteWaitlistEntryCommandHandler creates a handler for promotions.
// Requires a UoWFactory spanning jobs, the waitlist, and configuration.
func NewPromoteWaitlistEntryCommandHandler(uowFactory UoWFactory) PromoteWaitlistEntryCommandHandler {
	return PromoteWaitlistEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the promotion command.
//
// The new job starts in pending status as an ASAP job filed by the operator,
// carrying the entry's address, location, and tier. The quoted price freezes
// from the tier at promotion time; a missing tier prices the job at zero.
func (h *PromoteWaitlistEntryCommandHandler) Handle(ctx context.Context, cmd PromoteWaitlistEntryCommand) error {
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

	waitlistRepo := uow.WaitlistRepository()
	entry, err := waitlistRepo.Get(ctx, cmd.EntryID())
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	if err = entry.Promote(cmd.JobID(), now); err != nil {
		return err
	}

	quotedPriceCents, err := resolveQuotedPrice(ctx, uow.ConfigRepository(), entry.TierID())
	if err != nil {
		return err
	}

	aggregate, err := job.NewJob(
		cmd.JobID(),
		entry.CustomerID(),
		entry.Address(),
		entry.Location(),
		job.TypeASAP,
		entry.TierID(),
		quotedPriceCents,
		nil,
		job.SourceAdmin,
		now,
	)
	if err != nil {
		return err
	}
	aggregate.SetSpecialInstructions(entry.Notes())

	if err = uow.JobRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	// The compare-and-swap inside Update closes the race window between the
	// snapshot read above and this write.
	if err = waitlistRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
