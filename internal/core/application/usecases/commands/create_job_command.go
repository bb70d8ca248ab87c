package commands

import (
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var (
	ErrCreateJobCommandIsNotConstructed = errors.New(
		"CreateJobCommand must be created via NewCreateJobCommand constructor",
	)
	ErrAddressIsRequired      = errors.New("address is required")
	ErrScheduledForIsRequired = errors.New("scheduledFor is required for scheduled jobs")
)

// CreateJobCommand represents a request to create a new plow job.
// Carries the job site, requested timing, and the pricing tier reference used
// to freeze the quoted price at creation time.
type CreateJobCommand struct { //nolint:recvcheck //using for validation
	jobID      kernel.UUID
	customerID kernel.UUID
	address    string
	location   kernel.GeoPoint

	jobType             job.Type
	source              job.Source
	tierID              *int
	scheduledFor        *time.Time
	specialInstructions *string

	guard guard.ConstructorGuard
}

// NewCreateJobCommand creates a command to register a new plow job.
// Validates identifiers, the job site, and that scheduled jobs carry a
// scheduled time. Returns an error if any validation fails.
func NewCreateJobCommand(
	jobID kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	jobType job.Type,
	source job.Source,
	tierID *int,
	scheduledFor *time.Time,
	specialInstructions *string,
) (CreateJobCommand, error) {
	jobCommand := CreateJobCommand{
		tierID:              tierID,
		scheduledFor:        scheduledFor,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		jobCommand.setJobID(jobID),
		jobCommand.setCustomerID(customerID),
		jobCommand.setAddress(address),
		jobCommand.setLocation(location),
		jobCommand.setJobType(jobType, scheduledFor),
		jobCommand.setSource(source),
	); err != nil {
		return CreateJobCommand{}, err
	}

	return jobCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateJobCommandIsNotConstructed if validation fails.
func (c CreateJobCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobCommandIsNotConstructed)
}

// JobID returns the unique identifier for the new job.
func (c CreateJobCommand) JobID() kernel.UUID {
	return c.jobID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the job site street address.
func (c CreateJobCommand) Address() string {
	return c.address
}

// Location returns the job site coordinates.
func (c CreateJobCommand) Location() kernel.GeoPoint {
	return c.location
}

// JobType returns the requested job type.
func (c CreateJobCommand) JobType() job.Type {
	return c.jobType
}

// Source returns who filed the request.
func (c CreateJobCommand) Source() job.Source {
	return c.source
}

// TierID returns the driveway tier reference, if one was chosen.
func (c CreateJobCommand) TierID() *int {
	return c.tierID
}

// ScheduledFor returns the requested service time for scheduled jobs.
func (c CreateJobCommand) ScheduledFor() *time.Time {
	return c.scheduledFor
}

// SpecialInstructions returns the customer's notes, if any.
func (c CreateJobCommand) SpecialInstructions() *string {
	return c.specialInstructions
}

func (c *CreateJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}

	c.jobID = jobID
	return nil
}

func (c *CreateJobCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateJobCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateJobCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}

func (c *CreateJobCommand) setJobType(jobType job.Type, scheduledFor *time.Time) error {
	if err := jobType.Validate(); err != nil {
		return err
	}

	if jobType == job.TypeScheduled && scheduledFor == nil {
		return ErrScheduledForIsRequired
	}

	c.jobType = jobType
	return nil
}

func (c *CreateJobCommand) setSource(source job.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
