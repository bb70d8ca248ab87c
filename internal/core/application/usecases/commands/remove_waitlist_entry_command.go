package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrRemoveWaitlistEntryCommandIsNotConstructed = errors.New(
	"RemoveWaitlistEntryCommand must be created via NewRemoveWaitlistEntryCommand constructor",
)

// RemoveWaitlistEntryCommand represents a request to take an entry off the
// waitlist without promoting it.
type RemoveWaitlistEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveWaitlistEntryCommand creates a command to remove a waitlist entry.
func NewRemoveWaitlistEntryCommand(entryID kernel.UUID) (RemoveWaitlistEntryCommand, error) {
	removeCommand := RemoveWaitlistEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setEntryID(entryID); err != nil {
		return RemoveWaitlistEntryCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveWaitlistEntryCommand) Validate() error {
	return c.guard.Validate(ErrRemoveWaitlistEntryCommandIsNotConstructed)
}

// EntryID returns the identifier of the entry to remove.
func (c RemoveWaitlistEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

func (c *RemoveWaitlistEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}
