package commands

import (
	"context"
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// ExpireWaitlistEntriesCommandHandler expires waiting entries older than the
// cutoff. Entries promoted or cancelled between the sweep's read and its
// write lose the compare-and-swap and are skipped, never overwritten.
type ExpireWaitlistEntriesCommandHandler struct {
	uowFactory WaitlistUoWFactory
}

// NewExpireWaitlistEntriesCommandHandler creates a handler for the expiry sweep.
// Requires a WaitlistUoWFactory for transactional persistence.
func NewExpireWaitlistEntriesCommandHandler(uowFactory WaitlistUoWFactory) ExpireWaitlistEntriesCommandHandler {
	return ExpireWaitlistEntriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep. Returns how many entries were expired.
func (h *ExpireWaitlistEntriesCommandHandler) Handle(ctx context.Context, cmd ExpireWaitlistEntriesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	waitlistRepo := uow.WaitlistRepository()
	stale, err := waitlistRepo.GetStaleWaiting(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, entry := range stale {
		if err = entry.Expire(); err != nil {
			return 0, err
		}

		if err = waitlistRepo.Update(ctx, entry); err != nil {
			if errors.Is(err, waitlist.ErrAlreadyPromoted) {
				continue
			}
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
