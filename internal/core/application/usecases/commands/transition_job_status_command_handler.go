package commands

import (
	"context"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/services"
)

// TransitionJobStatusCommandHandler handles the business logic for moving a
// job through its lifecycle. Plain transitions delegate to the aggregate's
// transition table; cancellations additionally price the cancellation charge
// from the configured rules before the status changes.
type TransitionJobStatusCommandHandler struct {
	uowFactory         JobConfigUoWFactory
	cancellationPolicy services.CancellationPolicy
}

// NewTransitionJobStatusCommandHandler creates a handler for job transitions.
// Requires a JobConfigUoWFactory for transactional persistence.
func NewTransitionJobStatusCommandHandler(
	uowFactory JobConfigUoWFactory,
	cancellationPolicy services.CancellationPolicy,
) TransitionJobStatusCommandHandler {
	return TransitionJobStatusCommandHandler{
		uowFactory:         uowFactory,
		cancellationPolicy: cancellationPolicy,
	}
}

// Handle processes the transition command.
//
// The job's status mutation and its history record are persisted in one
// transaction, so a reader never observes one without the other. An illegal
// transition surfaces the aggregate's InvalidTransitionError unchanged.
func (h *TransitionJobStatusCommandHandler) Handle(ctx context.Context, cmd TransitionJobStatusCommand) error {
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

	now := time.Now().UTC()

	if cmd.ToStatus() == job.Cancelled {
		rules, err := uow.ConfigRepository().GetCancellationRules(ctx)
		if err != nil {
			return err
		}

		quote := h.cancellationPolicy.Quote(
			aggregate.CurrentPriceCents(),
			aggregate.JobType(),
			aggregate.ScheduledFor(),
			aggregate.DriverEngaged(),
			rules,
			now,
		)

		if err = aggregate.Cancel(cmd.ActorID(), now, cmd.Reason(), quote.ChargeCents); err != nil {
			return err
		}
	} else {
		if err = aggregate.Transition(cmd.ToStatus(), cmd.ActorID(), now); err != nil {
			return err
		}
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
