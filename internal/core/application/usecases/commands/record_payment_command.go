package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var (
	ErrRecordPaymentCommandIsNotConstructed = errors.New(
		"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
	)
	ErrPaymentAmountIsInvalid = errors.New("payment amount must be greater than 0")
)

// RecordPaymentCommand represents a request to record how a job was paid.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	jobID       kernel.UUID
	method      job.PaymentMethod
	amountCents int

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment on a job.
// Validates the job id, the payment method, and that the amount is positive.
func NewRecordPaymentCommand(
	jobID kernel.UUID,
	method job.PaymentMethod,
	amountCents int,
) (RecordPaymentCommand, error) {
	paymentCommand := RecordPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		paymentCommand.setJobID(jobID),
		paymentCommand.setMethod(method),
		paymentCommand.setAmountCents(amountCents),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return paymentCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// JobID returns the identifier of the job being paid.
func (c RecordPaymentCommand) JobID() kernel.UUID {
	return c.jobID
}

// Method returns how the customer paid.
func (c RecordPaymentCommand) Method() job.PaymentMethod {
	return c.method
}

// AmountCents returns the amount collected.
func (c RecordPaymentCommand) AmountCents() int {
	return c.amountCents
}

func (c *RecordPaymentCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method job.PaymentMethod) error {
	if err := method.Validate(); err != nil {
		return err
	}

	c.method = method
	return nil
}

func (c *RecordPaymentCommand) setAmountCents(amountCents int) error {
	if amountCents <= 0 {
		return ErrPaymentAmountIsInvalid
	}

	c.amountCents = amountCents
	return nil
}
