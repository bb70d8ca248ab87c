package commands

import (
	"context"
)

// RecordPaymentCommandHandler records how a job was paid. The aggregate only
// accepts payment while the job is being plowed or after completion.
type RecordPaymentCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewRecordPaymentCommandHandler creates a handler for payment recording.
// Requires a JobUoWFactory for transactional persistence.
func NewRecordPaymentCommandHandler(uowFactory JobUoWFactory) RecordPaymentCommandHandler {
	return RecordPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment recording command.
func (h *RecordPaymentCommandHandler) Handle(ctx context.Context, cmd RecordPaymentCommand) error {
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

	if err = aggregate.RecordPayment(cmd.Method(), cmd.AmountCents()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
