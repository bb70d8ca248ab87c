package waitlistrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// GormWaitlistRepository implements WaitlistRepository using GORM.
type GormWaitlistRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormWaitlistRepository creates a new GORM waitlist repository.
func NewGormWaitlistRepository(db *gorm.DB, tracker aggregateTracker) *GormWaitlistRepository {
	return &GormWaitlistRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new waitlist entry to the database.
func (r *GormWaitlistRepository) Add(ctx context.Context, aggregate *waitlist.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing waitlist entry to the database.
//
// When the entry left the waiting status, the write carries a
// `WHERE status = 'waiting'` guard: exactly one of any number of concurrent
// writers can match the row, and everyone else gets an AlreadyPromotedError
// with nothing written. This is the compare-and-swap the promotion contract
// relies on.
func (r *GormWaitlistRepository) Update(ctx context.Context, aggregate *waitlist.Entry) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	tx := r.db.WithContext(ctx).Model(&EntryDTO{}).Where("id = ?", dto.ID)
	if aggregate.Status() != waitlist.Waiting {
		tx = tx.Where("status = ?", waitlist.Waiting.String())
	}

	result := tx.Select("*").Omit("id").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		if aggregate.Status() != waitlist.Waiting {
			return waitlist.NewAlreadyPromotedError(aggregate.ID())
		}
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a waitlist entry by ID.
func (r *GormWaitlistRepository) Get(ctx context.Context, id kernel.UUID) (*waitlist.Entry, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EntryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("waitlistEntry", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllWaiting retrieves every entry still in the waiting status.
func (r *GormWaitlistRepository) GetAllWaiting(ctx context.Context) ([]*waitlist.Entry, error) {
	return r.findWaiting(ctx, nil)
}

// GetStaleWaiting retrieves waiting entries created before the cutoff.
func (r *GormWaitlistRepository) GetStaleWaiting(ctx context.Context, cutoff time.Time) ([]*waitlist.Entry, error) {
	return r.findWaiting(ctx, &cutoff)
}

func (r *GormWaitlistRepository) findWaiting(ctx context.Context, createdBefore *time.Time) ([]*waitlist.Entry, error) {
	tx := r.db.WithContext(ctx).
		Where("status = ?", waitlist.Waiting.String()).
		Order("created_at")
	if createdBefore != nil {
		tx = tx.Where("created_at < ?", *createdBefore)
	}

	var dtos []EntryDTO
	if err := tx.Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*waitlist.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
