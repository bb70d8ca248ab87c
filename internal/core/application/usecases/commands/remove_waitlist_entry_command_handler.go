package commands

import (
	"context"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// RemoveWaitlistEntryCommandHandler cancels a waiting entry. Removal is
// idempotent: removing an entry that already left the waiting status
// succeeds without rewriting it, so a double click or a replayed request
// never clobbers a promoted entry.
type RemoveWaitlistEntryCommandHandler struct {
	uowFactory WaitlistUoWFactory
}

// NewRemoveWaitlistEntryCommandHandler creates a handler for waitlist removal.
// Requires a WaitlistUoWFactory for transactional persistence.
func NewRemoveWaitlistEntryCommandHandler(uowFactory WaitlistUoWFactory) RemoveWaitlistEntryCommandHandler {
	return RemoveWaitlistEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the removal command.
func (h *RemoveWaitlistEntryCommandHandler) Handle(ctx context.Context, cmd RemoveWaitlistEntryCommand) error {
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

	wasWaiting := entry.Status() == waitlist.Waiting
	if err = entry.Cancel(); err != nil {
		return err
	}

	// A non-waiting entry is left untouched.
	if !wasWaiting {
		return uow.Commit(ctx)
	}

	if err = waitlistRepo.Update(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
