// Package jobrepo provides data transfer objects and mapping functions for
// job persistence. It implements the repository pattern for the job aggregate,
// handling the conversion between domain entities and database rows, including
// the status history and price change logs that ride along with each write.
package jobrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

// JobDTO represents the database structure for persisting job aggregates.
// Enums are stored by their wire names so rows stay readable in psql and
// stable across reorderings of the Go constants.
type JobDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Address    string
	Location   LocationDTO `gorm:"embedded"`
	TierID     *int

	JobType string
	Source  string
	Status  string `gorm:"index"`

	QuotedPriceCents int
	FinalPriceCents  *int

	SpecialInstructions *string

	RequestedAt  time.Time
	ScheduledFor *time.Time
	AssignedAt   *time.Time
	ArrivedAt    *time.Time
	StartedAt    *time.Time
	CompletedAt  *time.Time
	CancelledAt  *time.Time

	CancellationReason      *string
	CancellationChargeCents *int

	PaymentMethod      *string
	PaymentAmountCents *int
}

// TableName specifies the database table name for job entities.
func (JobDTO) TableName() string {
	return "jobs"
}

// LocationDTO represents the embedded job site coordinates within the job table.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// StatusChangeDTO represents one row of the append-only status history log.
type StatusChangeDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	JobID      uuid.UUID `gorm:"type:uuid;index"`
	FromStatus string
	ToStatus   string
	ActorID    uuid.UUID `gorm:"type:uuid"`
	OccurredAt time.Time
}

// TableName specifies the database table name for status history rows.
func (StatusChangeDTO) TableName() string {
	return "job_status_history"
}

// PriceChangeDTO represents one row of the append-only price change log.
type PriceChangeDTO struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	JobID         uuid.UUID `gorm:"type:uuid;index"`
	OldPriceCents int
	NewPriceCents int
	ChangedByID   uuid.UUID `gorm:"type:uuid"`
	OccurredAt    time.Time
}

// TableName specifies the database table name for price change rows.
func (PriceChangeDTO) TableName() string {
	return "job_price_changes"
}

// fromDomain converts a job domain aggregate to its database representation.
func fromDomain(aggregate *job.Job) JobDTO {
	var paymentMethod *string
	if m := aggregate.PaymentMethod(); m != nil {
		name := m.String()
		paymentMethod = &name
	}

	return JobDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		Address:    aggregate.Address(),
		Location: LocationDTO{
			Lat: aggregate.Location().Lat(),
			Lng: aggregate.Location().Lng(),
		},
		TierID: aggregate.TierID(),

		JobType: aggregate.JobType().String(),
		Source:  aggregate.Source().String(),
		Status:  aggregate.Status().String(),

		QuotedPriceCents: aggregate.QuotedPriceCents(),
		FinalPriceCents:  aggregate.FinalPriceCents(),

		SpecialInstructions: aggregate.SpecialInstructions(),

		RequestedAt:  aggregate.RequestedAt(),
		ScheduledFor: aggregate.ScheduledFor(),
		AssignedAt:   aggregate.AssignedAt(),
		ArrivedAt:    aggregate.ArrivedAt(),
		StartedAt:    aggregate.StartedAt(),
		CompletedAt:  aggregate.CompletedAt(),
		CancelledAt:  aggregate.CancelledAt(),

		CancellationReason:      aggregate.CancellationReason(),
		CancellationChargeCents: aggregate.CancellationChargeCents(),

		PaymentMethod:      paymentMethod,
		PaymentAmountCents: aggregate.PaymentAmountCents(),
	}
}

// statusChangeFromDomain converts a queued history record to its row form.
func statusChangeFromDomain(change job.StatusChange) StatusChangeDTO {
	return StatusChangeDTO{
		JobID:      change.JobID.Bytes(),
		FromStatus: change.From.String(),
		ToStatus:   change.To.String(),
		ActorID:    change.ActorID.Bytes(),
		OccurredAt: change.OccurredAt,
	}
}

// priceChangeFromDomain converts a queued price change record to its row form.
func priceChangeFromDomain(change job.PriceChange) PriceChangeDTO {
	return PriceChangeDTO{
		JobID:         change.JobID.Bytes(),
		OldPriceCents: change.OldPriceCents,
		NewPriceCents: change.NewPriceCents,
		ChangedByID:   change.ChangedByID.Bytes(),
		OccurredAt:    change.OccurredAt,
	}
}

// toDomain converts a database DTO to a job domain aggregate using RestoreJob.
func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	jobType, err := job.TypeFromString(dto.JobType)
	if err != nil {
		return nil, err
	}

	source, err := job.SourceFromString(dto.Source)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var paymentMethod *job.PaymentMethod
	if dto.PaymentMethod != nil {
		method, methodErr := job.PaymentMethodFromString(*dto.PaymentMethod)
		if methodErr != nil {
			return nil, methodErr
		}
		paymentMethod = &method
	}

	aggregate, err := job.RestoreJob(
		id,
		customerID,
		dto.Address,
		location,
		jobType,
		dto.TierID,
		dto.QuotedPriceCents,
		dto.FinalPriceCents,
		dto.ScheduledFor,
		source,
		status,
		dto.RequestedAt,
		job.TransitionTimestamps{
			AssignedAt:  dto.AssignedAt,
			ArrivedAt:   dto.ArrivedAt,
			StartedAt:   dto.StartedAt,
			CompletedAt: dto.CompletedAt,
			CancelledAt: dto.CancelledAt,
		},
		dto.CancellationReason,
		dto.CancellationChargeCents,
		paymentMethod,
		dto.PaymentAmountCents,
	)
	if err != nil {
		return nil, err
	}

	if dto.SpecialInstructions != nil {
		aggregate.SetSpecialInstructions(dto.SpecialInstructions)
	}

	return aggregate, nil
}
