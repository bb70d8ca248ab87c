package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var (
	ErrOverrideJobPriceCommandIsNotConstructed = errors.New(
		"OverrideJobPriceCommand must be created via NewOverrideJobPriceCommand constructor",
	)
	ErrPriceIsInvalid = errors.New("price must be greater than 0")
)

// OverrideJobPriceCommand represents an operator's request to set a final
// price on a job, replacing the quoted price for billing.
type OverrideJobPriceCommand struct { //nolint:recvcheck //using for validation
	jobID         kernel.UUID
	changedByID   kernel.UUID
	newPriceCents int

	guard guard.ConstructorGuard
}

// NewOverrideJobPriceCommand creates a command to reprice a job.
// Validates both identifiers and that the new price is positive.
func NewOverrideJobPriceCommand(
	jobID kernel.UUID,
	changedByID kernel.UUID,
	newPriceCents int,
) (OverrideJobPriceCommand, error) {
	priceCommand := OverrideJobPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		priceCommand.setJobID(jobID),
		priceCommand.setChangedByID(changedByID),
		priceCommand.setNewPriceCents(newPriceCents),
	); err != nil {
		return OverrideJobPriceCommand{}, err
	}

	return priceCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c OverrideJobPriceCommand) Validate() error {
	return c.guard.Validate(ErrOverrideJobPriceCommandIsNotConstructed)
}

// JobID returns the identifier of the job to reprice.
func (c OverrideJobPriceCommand) JobID() kernel.UUID {
	return c.jobID
}

// ChangedByID returns the operator recorded in the price change log.
func (c OverrideJobPriceCommand) ChangedByID() kernel.UUID {
	return c.changedByID
}

// NewPriceCents returns the final price to set.
func (c OverrideJobPriceCommand) NewPriceCents() int {
	return c.newPriceCents
}

func (c *OverrideJobPriceCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *OverrideJobPriceCommand) setChangedByID(changedByID kernel.UUID) error {
	if err := changedByID.Validate(); err != nil {
		return err
	}

	c.changedByID = changedByID
	return nil
}

func (c *OverrideJobPriceCommand) setNewPriceCents(newPriceCents int) error {
	if newPriceCents <= 0 {
		return ErrPriceIsInvalid
	}

	c.newPriceCents = newPriceCents
	return nil
}
