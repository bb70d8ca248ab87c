// Package ports defines repository interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
// Provides methods for storing, retrieving, and querying jobs together with
// their status history and price change log.
type JobRepository interface {
	// Add persists a new job aggregate to storage together with any queued
	// status change records.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate. Queued status and
	// price change records are written in the same transaction as the row, so
	// a reader never observes a status without its history entry.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllActive retrieves every job that has not reached a terminal status,
	// ordered by request time. Used by the job board.
	GetAllActive(ctx context.Context) ([]*job.Job, error)
}
