package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

// GetJobBoardQueryHandler reads the dispatch board from the database.
type GetJobBoardQueryHandler struct {
	db *gorm.DB
}

// NewGetJobBoardQueryHandler creates a handler for dispatch board queries.
// Requires a GORM database connection for query execution.
func NewGetJobBoardQueryHandler(db *gorm.DB) GetJobBoardQueryHandler {
	return GetJobBoardQueryHandler{db: db}
}

// Handle executes the query. Jobs in completed, cancelled or rejected status
// are excluded; results come back oldest request first.
func (h GetJobBoardQueryHandler) Handle(
	ctx context.Context,
	query GetJobBoardQuery,
) ([]GetJobBoardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetJobBoardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			status,
			job_type,
			quoted_price_cents,
			final_price_cents,
			requested_at,
			scheduled_for
		FROM jobs
		WHERE status NOT IN (?, ?, ?)
		ORDER BY requested_at
	`, job.Completed.String(), job.Cancelled.String(), job.Rejected.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var jobResp GetJobBoardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&jobResp.Address,
			&jobResp.Status,
			&jobResp.JobType,
			&jobResp.QuotedPriceCents,
			&jobResp.FinalPriceCents,
			&jobResp.RequestedAt,
			&jobResp.ScheduledFor,
		)
		if err != nil {
			return nil, err
		}

		jobID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		jobResp.ID = jobID

		jobs = append(jobs, jobResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
