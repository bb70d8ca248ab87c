package waitlist

import (
	"errors"
	"fmt"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

	// ErrAlreadyPromoted is the sentinel wrapped by AlreadyPromotedError.
	// It marks the benign outcome of losing a promotion race or promoting an
	// entry that already left the waiting status. It is not a bug.
	ErrAlreadyPromoted = errors.New("waitlist entry is not in waiting status")

	// ErrEntryNotWaiting is returned by Expire when the entry already left
	// the waiting status.
	ErrEntryNotWaiting = errors.New("waitlist entry is not waiting")
)

// AlreadyPromotedError reports an attempt to promote an entry that is no
// longer waiting. It carries the entry id for the caller's message.
type AlreadyPromotedError struct {
	EntryID kernel.UUID
}

// NewAlreadyPromotedError creates an AlreadyPromotedError for the given entry.
func NewAlreadyPromotedError(entryID kernel.UUID) *AlreadyPromotedError {
	return &AlreadyPromotedError{EntryID: entryID}
}

func (e *AlreadyPromotedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyPromoted, e.EntryID)
}

func (e *AlreadyPromotedError) Unwrap() error {
	return ErrAlreadyPromoted
}

// Entry is a job request parked on the waitlist. It carries the denormalized
// request fields needed to create a Job when the operator promotes it.
//
// Invariants:
//   - promotedJobID is non-nil if and only if status is Promoted
//   - an entry is promoted at most once; Promote on a non-waiting entry fails
type Entry struct {
	id         kernel.UUID
	customerID kernel.UUID

	address  string
	location kernel.GeoPoint
	tierID   *int

	notes        *string
	contactPhone *string
	contactEmail *string

	status        EntryStatus
	promotedJobID *kernel.UUID
	promotedAt    *time.Time

	createdAt time.Time

	isConstructed bool
}

// NewEntry creates a waitlist entry in Waiting status.
func NewEntry(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	tierID *int,
	notes *string,
	contactPhone *string,
	contactEmail *string,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setCustomerID(customerID),
		e.setAddress(address),
		e.setLocation(location),
	); err != nil {
		return nil, err
	}

	e.tierID = tierID
	e.notes = notes
	e.contactPhone = contactPhone
	e.contactEmail = contactEmail
	e.createdAt = createdAt
	return e, nil
}

// RestoreEntry reconstructs an Entry from persisted state.
// Used exclusively by repository adapters.
func RestoreEntry(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	tierID *int,
	notes *string,
	contactPhone *string,
	contactEmail *string,
	status EntryStatus,
	promotedJobID *kernel.UUID,
	promotedAt *time.Time,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		status:        Waiting,
		isConstructed: true,
	}

	if err := errors.Join(
		e.setID(id),
		e.setCustomerID(customerID),
		e.setAddress(address),
		e.setLocation(location),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if (promotedJobID != nil) != (status == Promoted) {
		return nil, errs.NewValueIsInvalidErrorWithCause("promotedJobId",
			fmt.Errorf("promoted job id must be set exactly when status is %s", Promoted))
	}

	e.status = status
	e.tierID = tierID
	e.notes = notes
	e.contactPhone = contactPhone
	e.contactEmail = contactEmail
	e.promotedJobID = promotedJobID
	e.promotedAt = promotedAt
	e.createdAt = createdAt
	return e, nil
}

// Validate ensures the Entry instance was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}

	return nil
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// CustomerID returns the requesting customer's identifier.
func (e *Entry) CustomerID() kernel.UUID {
	return e.customerID
}

// Address returns the requested job site street address.
func (e *Entry) Address() string {
	return e.address
}

// Location returns the requested job site coordinates.
func (e *Entry) Location() kernel.GeoPoint {
	return e.location
}

// TierID returns the requested driveway tier, if one was chosen.
func (e *Entry) TierID() *int {
	return e.tierID
}

// Notes returns the customer's notes, if any.
func (e *Entry) Notes() *string { return e.notes }

// ContactPhone returns the contact phone number, if any.
func (e *Entry) ContactPhone() *string { return e.contactPhone }

// ContactEmail returns the contact email address, if any.
func (e *Entry) ContactEmail() *string { return e.contactEmail }

// Status returns the entry's current status.
func (e *Entry) Status() EntryStatus {
	return e.status
}

// PromotedJobID returns the id of the job created by promotion, set exactly
// once when the entry is promoted.
func (e *Entry) PromotedJobID() *kernel.UUID {
	return e.promotedJobID
}

// PromotedAt returns when the entry was promoted, if it was.
func (e *Entry) PromotedAt() *time.Time {
	return e.promotedAt
}

// CreatedAt returns when the request joined the waitlist.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

// Promote marks the entry promoted and links the job created from it.
// Fails with an AlreadyPromotedError when the entry is not waiting; the
// caller treats that as a benign race outcome, not a bug.
func (e *Entry) Promote(jobID kernel.UUID, now time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}

	if err := jobID.Validate(); err != nil {
		return err
	}

	if e.status != Waiting {
		return NewAlreadyPromotedError(e.id)
	}

	e.status = Promoted
	e.promotedJobID = &jobID
	e.promotedAt = &now
	return nil
}

// Cancel removes a waiting entry from the waitlist. Cancelling an entry that
// already left the waiting status is a no-op: removal is idempotent and never
// rewrites a promoted or expired entry.
func (e *Entry) Cancel() error {
	if err := e.Validate(); err != nil {
		return err
	}

	if e.status != Waiting {
		return nil
	}

	e.status = Cancelled
	return nil
}

// Expire marks a waiting entry as expired. Used by the background sweep for
// entries that waited past the configured TTL.
func (e *Entry) Expire() error {
	if err := e.Validate(); err != nil {
		return err
	}

	if e.status != Waiting {
		return ErrEntryNotWaiting
	}

	e.status = Expired
	return nil
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	e.customerID = id
	return nil
}

func (e *Entry) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	e.address = address
	return nil
}

func (e *Entry) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	e.location = location
	return nil
}
