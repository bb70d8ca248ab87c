package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrTransitionJobStatusCommandIsNotConstructed = errors.New(
	"TransitionJobStatusCommand must be created via NewTransitionJobStatusCommand constructor",
)

// TransitionJobStatusCommand represents a request to move a job to a new
// status. Cancellations additionally carry the customer's reason; the
// cancellation charge itself is computed by the handler, not the caller.
type TransitionJobStatusCommand struct { //nolint:recvcheck //using for validation
	jobID    kernel.UUID
	actorID  kernel.UUID
	toStatus job.Status
	reason   *string

	guard guard.ConstructorGuard
}

// NewTransitionJobStatusCommand creates a command to transition a job.
// Validates both identifiers and that the target status is a defined value;
// whether the transition is legal from the job's current status is decided by
// the aggregate, not the command.
func NewTransitionJobStatusCommand(
	jobID kernel.UUID,
	actorID kernel.UUID,
	toStatus job.Status,
	reason *string,
) (TransitionJobStatusCommand, error) {
	transitionCommand := TransitionJobStatusCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setJobID(jobID),
		transitionCommand.setActorID(actorID),
		transitionCommand.setToStatus(toStatus),
	); err != nil {
		return TransitionJobStatusCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c TransitionJobStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionJobStatusCommandIsNotConstructed)
}

// JobID returns the identifier of the job to transition.
func (c TransitionJobStatusCommand) JobID() kernel.UUID {
	return c.jobID
}

// ActorID returns who requested the transition, recorded in the history log.
func (c TransitionJobStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ToStatus returns the requested target status.
func (c TransitionJobStatusCommand) ToStatus() job.Status {
	return c.toStatus
}

// Reason returns the cancellation reason, if the caller supplied one.
func (c TransitionJobStatusCommand) Reason() *string {
	return c.reason
}

func (c *TransitionJobStatusCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *TransitionJobStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *TransitionJobStatusCommand) setToStatus(toStatus job.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}

	c.toStatus = toStatus
	return nil
}
