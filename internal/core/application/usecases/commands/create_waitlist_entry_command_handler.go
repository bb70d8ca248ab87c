package commands

import (
	"context"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// CreateWaitlistEntryCommandHandler parks a job request on the waitlist.
type CreateWaitlistEntryCommandHandler struct {
	uowFactory WaitlistUoWFactory
}

// NewCreateWaitlistEntryCommandHandler creates a handler for waitlist intake.
// Requires a WaitlistUoWFactory for transactional persistence.
func NewCreateWaitlistEntryCommandHandler(uowFactory WaitlistUoWFactory) CreateWaitlistEntryCommandHandler {
	return CreateWaitlistEntryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the waitlist intake command.
func (h *CreateWaitlistEntryCommandHandler) Handle(ctx context.Context, cmd CreateWaitlistEntryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	entry, err := waitlist.NewEntry(
		cmd.EntryID(),
		cmd.CustomerID(),
		cmd.Address(),
		cmd.Location(),
		cmd.TierID(),
		cmd.Notes(),
		cmd.ContactPhone(),
		cmd.ContactEmail(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.WaitlistRepository().Add(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
