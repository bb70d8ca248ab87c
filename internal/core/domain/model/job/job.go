package job

import (
	"errors"
	"fmt"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

var (
	// ErrJobIsNotConstructed is returned when a Job instance was not created
	// through NewJob or RestoreJob. This ensures all jobs are properly validated.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob or RestoreJob constructor")

	// ErrScheduledForRequired is returned when a scheduled job is created
	// without a booked time.
	ErrScheduledForRequired = errors.New("scheduledFor is required for scheduled jobs")

	// ErrJobIsTerminal is returned when an operation requires a live job but
	// the job has already reached completed, cancelled or rejected.
	ErrJobIsTerminal = errors.New("job is in a terminal status")

	// ErrJobNotPayable is returned when a payment is recorded outside the
	// payable window (in_progress or completed).
	ErrJobNotPayable = errors.New("payment can only be recorded while the job is in progress or completed")
)

// Job is the aggregate root of the dispatch domain. It owns the status state
// machine, the transition timestamps, and the pending history records that the
// repository flushes alongside every update.
//
// Invariants:
//   - Status changes only through Transition/Cancel, never directly
//   - quotedPriceCents is frozen at creation and never rewritten
//   - at most one terminal timestamp is ever set (a job ends exactly once)
//   - every successful transition produces exactly one StatusChange record
type Job struct {
	id         kernel.UUID
	customerID kernel.UUID

	status  Status
	source  Source
	jobType Type

	address  string
	location kernel.GeoPoint
	tierID   *int

	specialInstructions *string

	quotedPriceCents int
	finalPriceCents  *int

	requestedAt  time.Time
	scheduledFor *time.Time

	assignedAt  *time.Time
	arrivedAt   *time.Time
	startedAt   *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	cancellationReason      *string
	cancellationChargeCents *int

	paymentMethod      *PaymentMethod
	paymentAmountCents *int

	// uncommitted records, drained by the repository on Add/Update
	statusChanges []StatusChange
	priceChanges  []PriceChange

	isConstructed bool
}

// NewJob creates a Job in Pending status with a frozen quoted price.
//
// Validation rules:
//   - id and customerID must be valid UUIDs
//   - address must not be empty
//   - location must be a constructed GeoPoint
//   - jobType and source must be defined enum values
//   - scheduled jobs must carry a scheduledFor time
//   - quotedPriceCents must not be negative
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	jobType Type,
	tierID *int,
	quotedPriceCents int,
	scheduledFor *time.Time,
	source Source,
	requestedAt time.Time,
) (*Job, error) {
	j := &Job{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setAddress(address),
		j.setLocation(location),
		j.setJobType(jobType),
		j.setSource(source),
		j.setQuotedPrice(quotedPriceCents),
	); err != nil {
		return nil, err
	}

	if jobType == TypeScheduled && scheduledFor == nil {
		return nil, ErrScheduledForRequired
	}

	j.tierID = tierID
	j.scheduledFor = scheduledFor
	j.requestedAt = requestedAt
	return j, nil
}

// RestoreJob reconstructs a Job from persisted state. Unlike NewJob it accepts
// any valid status and carries the stored timestamps through unchanged.
// Used exclusively by repository adapters.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	address string,
	location kernel.GeoPoint,
	jobType Type,
	tierID *int,
	quotedPriceCents int,
	finalPriceCents *int,
	scheduledFor *time.Time,
	source Source,
	status Status,
	requestedAt time.Time,
	timestamps TransitionTimestamps,
	cancellationReason *string,
	cancellationChargeCents *int,
	paymentMethod *PaymentMethod,
	paymentAmountCents *int,
) (*Job, error) {
	j := &Job{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setAddress(address),
		j.setLocation(location),
		j.setJobType(jobType),
		j.setSource(source),
		j.setQuotedPrice(quotedPriceCents),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	j.status = status
	j.tierID = tierID
	j.finalPriceCents = finalPriceCents
	j.scheduledFor = scheduledFor
	j.requestedAt = requestedAt
	j.assignedAt = timestamps.AssignedAt
	j.arrivedAt = timestamps.ArrivedAt
	j.startedAt = timestamps.StartedAt
	j.completedAt = timestamps.CompletedAt
	j.cancelledAt = timestamps.CancelledAt
	j.cancellationReason = cancellationReason
	j.cancellationChargeCents = cancellationChargeCents
	j.paymentMethod = paymentMethod
	j.paymentAmountCents = paymentAmountCents
	return j, nil
}

// TransitionTimestamps groups the per-transition timestamps for RestoreJob.
type TransitionTimestamps struct {
	AssignedAt  *time.Time
	ArrivedAt   *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// Validate ensures the Job instance was created through a constructor.
func (j *Job) Validate() error {
	if j == nil || !j.isConstructed {
		return ErrJobIsNotConstructed
	}

	return nil
}

// IsEqual compares two jobs by their unique identifiers.
func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

// ID returns the job's unique identifier.
func (j *Job) ID() kernel.UUID {
	return j.id
}

// CustomerID returns the requesting customer's identifier.
func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

// Status returns the current lifecycle status.
func (j *Job) Status() Status {
	return j.status
}

// Source returns who entered the job into the system.
func (j *Job) Source() Source {
	return j.source
}

// JobType returns whether the job is on-demand or scheduled.
func (j *Job) JobType() Type {
	return j.jobType
}

// Address returns the job site street address.
func (j *Job) Address() string {
	return j.address
}

// Location returns the job site coordinates.
func (j *Job) Location() kernel.GeoPoint {
	return j.location
}

// TierID returns the driveway tier applied at creation, if any.
func (j *Job) TierID() *int {
	return j.tierID
}

// SpecialInstructions returns the customer's notes for the driver, if any.
func (j *Job) SpecialInstructions() *string {
	return j.specialInstructions
}

// SetSpecialInstructions attaches free-form notes for the driver.
func (j *Job) SetSpecialInstructions(notes *string) {
	j.specialInstructions = notes
}

// QuotedPriceCents returns the price frozen at creation time.
func (j *Job) QuotedPriceCents() int {
	return j.quotedPriceCents
}

// FinalPriceCents returns the admin override price, if one was set.
func (j *Job) FinalPriceCents() *int {
	return j.finalPriceCents
}

// CurrentPriceCents returns the effective price: the override when present,
// the frozen quote otherwise.
func (j *Job) CurrentPriceCents() int {
	if j.finalPriceCents != nil {
		return *j.finalPriceCents
	}
	return j.quotedPriceCents
}

// RequestedAt returns when the job was entered into the system.
func (j *Job) RequestedAt() time.Time {
	return j.requestedAt
}

// ScheduledFor returns the booked time for scheduled jobs, nil for ASAP jobs.
func (j *Job) ScheduledFor() *time.Time {
	return j.scheduledFor
}

// AssignedAt returns when the job entered Assigned, if it has.
func (j *Job) AssignedAt() *time.Time { return j.assignedAt }

// ArrivedAt returns when the driver arrived on site, if they have.
func (j *Job) ArrivedAt() *time.Time { return j.arrivedAt }

// StartedAt returns when plowing started, if it has.
func (j *Job) StartedAt() *time.Time { return j.startedAt }

// CompletedAt returns when the job completed, if it did.
func (j *Job) CompletedAt() *time.Time { return j.completedAt }

// CancelledAt returns when the job was cancelled, if it was.
func (j *Job) CancelledAt() *time.Time { return j.cancelledAt }

// CancellationReason returns the stored cancellation reason, if any.
func (j *Job) CancellationReason() *string { return j.cancellationReason }

// CancellationChargeCents returns the charge applied at cancellation, if any.
func (j *Job) CancellationChargeCents() *int { return j.cancellationChargeCents }

// PaymentMethod returns how the job was paid, if payment was recorded.
func (j *Job) PaymentMethod() *PaymentMethod { return j.paymentMethod }

// PaymentAmountCents returns the collected amount, if payment was recorded.
func (j *Job) PaymentAmountCents() *int { return j.paymentAmountCents }

// DriverEngaged reports whether the driver has already set out for the site.
// It determines the ASAP cancellation charge: once the driver is en route
// (or further along), cancelling is no longer free.
func (j *Job) DriverEngaged() bool {
	return j.status == EnRoute || j.status == Arrived || j.status == InProgress
}

// Transition moves the job to a new status.
//
// If the transition is not in the table, it returns an InvalidTransitionError
// carrying both endpoints and leaves the job untouched. On success it updates
// the status, stamps the timestamp that belongs to the target status
// (assigned, arrived, in_progress, completed and cancelled stamp; pending,
// waitlisted, en_route and rejected do not), and queues a StatusChange record
// for the repository to persist with the job.
func (j *Job) Transition(to Status, actorID kernel.UUID, now time.Time) error {
	if err := j.Validate(); err != nil {
		return err
	}

	if err := actorID.Validate(); err != nil {
		return err
	}

	if !IsValidTransition(j.status, to) {
		return NewInvalidTransitionError(j.status, to)
	}

	from := j.status
	j.status = to
	j.stampTransition(to, now)

	j.statusChanges = append(j.statusChanges, StatusChange{
		JobID:      j.id,
		From:       from,
		To:         to,
		ActorID:    actorID,
		OccurredAt: now,
	})

	return nil
}

// stampTransition records the timestamp that belongs to the target status.
// Statuses without a timestamp slot stamp nothing.
func (j *Job) stampTransition(to Status, now time.Time) {
	switch to {
	case Assigned:
		j.assignedAt = &now
	case Arrived:
		j.arrivedAt = &now
	case InProgress:
		j.startedAt = &now
	case Completed:
		j.completedAt = &now
	case Cancelled:
		j.cancelledAt = &now
	case Unknown, Pending, Waitlisted, EnRoute, Rejected:
		// no timestamp slot
	}
}

// Cancel transitions the job to Cancelled and records the cancellation
// outcome computed by the pricing policy. The transition is validated first;
// an illegal cancellation leaves the job untouched.
func (j *Job) Cancel(actorID kernel.UUID, now time.Time, reason *string, chargeCents int) error {
	if err := j.Transition(Cancelled, actorID, now); err != nil {
		return err
	}

	j.cancellationReason = reason
	j.cancellationChargeCents = &chargeCents
	return nil
}

// OverridePrice sets the final price on a live job and queues a PriceChange
// record. Terminal jobs cannot be repriced.
func (j *Job) OverridePrice(newPriceCents int, changedByID kernel.UUID, now time.Time) error {
	if err := j.Validate(); err != nil {
		return err
	}

	if err := changedByID.Validate(); err != nil {
		return err
	}

	if newPriceCents <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("newPriceCents",
			fmt.Errorf("%d is not greater than 0", newPriceCents))
	}

	if j.status.IsTerminal() {
		return ErrJobIsTerminal
	}

	oldPrice := j.CurrentPriceCents()
	j.finalPriceCents = &newPriceCents

	j.priceChanges = append(j.priceChanges, PriceChange{
		JobID:         j.id,
		OldPriceCents: oldPrice,
		NewPriceCents: newPriceCents,
		ChangedByID:   changedByID,
		OccurredAt:    now,
	})

	return nil
}

// RecordPayment stores how the customer settled the job. Payments are only
// accepted while the job is payable: in progress or completed.
func (j *Job) RecordPayment(method PaymentMethod, amountCents int) error {
	if err := j.Validate(); err != nil {
		return err
	}

	if err := method.Validate(); err != nil {
		return err
	}

	if amountCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("paymentAmountCents",
			fmt.Errorf("%d is negative", amountCents))
	}

	if j.status != InProgress && j.status != Completed {
		return ErrJobNotPayable
	}

	j.paymentMethod = &method
	j.paymentAmountCents = &amountCents
	return nil
}

// PendingStatusChanges returns the uncommitted transition records queued since
// the aggregate was loaded. The repository persists them together with the
// job row in one transaction.
func (j *Job) PendingStatusChanges() []StatusChange {
	return j.statusChanges
}

// PendingPriceChanges returns the uncommitted price override records.
func (j *Job) PendingPriceChanges() []PriceChange {
	return j.priceChanges
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	j.customerID = id
	return nil
}

func (j *Job) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	j.address = address
	return nil
}

func (j *Job) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	j.location = location
	return nil
}

func (j *Job) setJobType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	j.jobType = t
	return nil
}

func (j *Job) setSource(s Source) error {
	if err := s.Validate(); err != nil {
		return err
	}
	j.source = s
	return nil
}

func (j *Job) setQuotedPrice(cents int) error {
	if cents < 0 {
		return errs.NewValueIsInvalidErrorWithCause("quotedPriceCents",
			fmt.Errorf("%d is negative", cents))
	}
	j.quotedPriceCents = cents
	return nil
}
