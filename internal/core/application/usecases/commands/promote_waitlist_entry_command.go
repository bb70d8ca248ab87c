package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrPromoteWaitlistEntryCommandIsNotConstructed = errors.New(
	"PromoteWaitlistEntryCommand must be created via NewPromoteWaitlistEntryCommand constructor",
)

// PromoteWaitlistEntryCommand represents an operator's request to turn a
// waiting entry into a live job.
type PromoteWaitlistEntryCommand struct { //nolint:recvcheck //using for validation
	entryID kernel.UUID
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewPromoteWaitlistEntryCommand creates a command to promote a waitlist
// entry. The caller supplies the id the new job will be created under.
func NewPromoteWaitlistEntryCommand(entryID kernel.UUID, jobID kernel.UUID) (PromoteWaitlistEntryCommand, error) {
	promoteCommand := PromoteWaitlistEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		promoteCommand.setEntryID(entryID),
		promoteCommand.setJobID(jobID),
	); err != nil {
		return PromoteWaitlistEntryCommand{}, err
	}

	return promoteCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c PromoteWaitlistEntryCommand) Validate() error {
	return c.guard.Validate(ErrPromoteWaitlistEntryCommandIsNotConstructed)
}

// EntryID returns the identifier of the entry to promote.
func (c PromoteWaitlistEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// JobID returns the identifier the new job is created under.
func (c PromoteWaitlistEntryCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *PromoteWaitlistEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *PromoteWaitlistEntryCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}
