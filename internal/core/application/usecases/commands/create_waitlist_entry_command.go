package commands

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrCreateWaitlistEntryCommandIsNotConstructed = errors.New(
	"CreateWaitlistEntryCommand must be created via NewCreateWaitlistEntryCommand constructor",
)

// CreateWaitlistEntryCommand represents a request to park a job request on
// the waitlist when it cannot be served immediately.
type CreateWaitlistEntryCommand struct { //nolint:recvcheck //using for validation
	entryID    kernel.UUID
	customerID kernel.UUID
	address    string
	location   kernel.GeoPoint

	tierID       *int
	notes        *string
	contactPhone *string
	contactEmail *string

	guard guard.ConstructorGuard
}

// NewCreateWaitlistEntryCommand creates a command to add a waitlist entry.
func NewCreateWaitlistEntryCommand(
	entryID kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	tierID *int,
	notes *string,
	contactPhone *string,
	contactEmail *string,
) (CreateWaitlistEntryCommand, error) {
	entryCommand := CreateWaitlistEntryCommand{
		tierID:       tierID,
		notes:        notes,
		contactPhone: contactPhone,
		contactEmail: contactEmail,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		entryCommand.setEntryID(entryID),
		entryCommand.setCustomerID(customerID),
		entryCommand.setAddress(address),
		entryCommand.setLocation(location),
	); err != nil {
		return CreateWaitlistEntryCommand{}, err
	}

	return entryCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateWaitlistEntryCommand) Validate() error {
	return c.guard.Validate(ErrCreateWaitlistEntryCommandIsNotConstructed)
}

// EntryID returns the unique identifier for the new entry.
func (c CreateWaitlistEntryCommand) EntryID() kernel.UUID {
	return c.entryID
}

// CustomerID returns the requesting customer's identifier.
func (c CreateWaitlistEntryCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Address returns the requested job site street address.
func (c CreateWaitlistEntryCommand) Address() string {
	return c.address
}

// Location returns the requested job site coordinates.
func (c CreateWaitlistEntryCommand) Location() kernel.GeoPoint {
	return c.location
}

// TierID returns the requested driveway tier, if one was chosen.
func (c CreateWaitlistEntryCommand) TierID() *int {
	return c.tierID
}

// Notes returns the customer's notes, if any.
func (c CreateWaitlistEntryCommand) Notes() *string {
	return c.notes
}

// ContactPhone returns the contact phone number, if any.
func (c CreateWaitlistEntryCommand) ContactPhone() *string {
	return c.contactPhone
}

// ContactEmail returns the contact email address, if any.
func (c CreateWaitlistEntryCommand) ContactEmail() *string {
	return c.contactEmail
}

func (c *CreateWaitlistEntryCommand) setEntryID(entryID kernel.UUID) error {
	if err := entryID.Validate(); err != nil {
		return err
	}

	c.entryID = entryID
	return nil
}

func (c *CreateWaitlistEntryCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateWaitlistEntryCommand) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}

	c.address = address
	return nil
}

func (c *CreateWaitlistEntryCommand) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}

	c.location = location
	return nil
}
