package jobrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// GormJobRepository implements JobRepository using GORM.
type GormJobRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormJobRepository creates a new GORM job repository.
func NewGormJobRepository(db *gorm.DB, tracker aggregateTracker) *GormJobRepository {
	return &GormJobRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new job to the database together with any queued history rows.
func (r *GormJobRepository) Add(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := r.appendChangeLogs(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing job to the database.
//
// The row update is guarded by the status the aggregate transitioned from, so
// two concurrent transitions on the same job cannot both apply: the loser
// matches zero rows and gets an InvalidTransitionError. Queued status history
// and price change rows are written under the same transaction as the row,
// keeping the status and its history record atomic.
func (r *GormJobRepository) Update(ctx context.Context, aggregate *job.Job) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&JobDTO{}).Where("id = ?", dto.ID)
	if from, ok := transitionedFrom(aggregate); ok {
		tx = tx.Where("status = ?", from.String())
	}

	result := tx.Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if from, ok := transitionedFrom(aggregate); ok {
			return job.NewInvalidTransitionError(from, aggregate.Status())
		}
		return gorm.ErrRecordNotFound
	}

	if err := r.appendChangeLogs(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a job by ID.
func (r *GormJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto JobDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("job", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves every job that has not reached a terminal status.
func (r *GormJobRepository) GetAllActive(ctx context.Context) ([]*job.Job, error) {
	var dtos []JobDTO
	err := r.db.WithContext(ctx).
		Where("status NOT IN (?, ?, ?)",
			job.Completed.String(), job.Cancelled.String(), job.Rejected.String()).
		Order("requested_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, aggregate)
	}

	return jobs, nil
}

// appendChangeLogs writes the aggregate's queued status history and price
// change records.
func (r *GormJobRepository) appendChangeLogs(ctx context.Context, aggregate *job.Job) error {
	for _, change := range aggregate.PendingStatusChanges() {
		dto := statusChangeFromDomain(change)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}

	for _, change := range aggregate.PendingPriceChanges() {
		dto := priceChangeFromDomain(change)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

// transitionedFrom reports the status the aggregate left in this unit of
// work, taken from the oldest queued history record.
func transitionedFrom(aggregate *job.Job) (job.Status, bool) {
	changes := aggregate.PendingStatusChanges()
	if len(changes) == 0 {
		return job.Unknown, false
	}

	return changes[0].From, true
}
