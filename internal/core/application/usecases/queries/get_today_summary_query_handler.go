package queries

import (
	"context"

	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// GetTodaySummaryQueryHandler computes the operator's dashboard counters.
type GetTodaySummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetTodaySummaryQueryHandler creates a handler for dashboard summaries.
// Requires a GORM database connection for query execution.
func NewGetTodaySummaryQueryHandler(db *gorm.DB) GetTodaySummaryQueryHandler {
	return GetTodaySummaryQueryHandler{db: db}
}

// Handle executes the summary. Requested, completed and cancelled counts and
// collected payments cover the queried day; active jobs and the waitlist
// backlog are point-in-time counts regardless of day.
func (h GetTodaySummaryQueryHandler) Handle(
	ctx context.Context,
	query GetTodaySummaryQuery,
) (GetTodaySummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTodaySummaryQueryResponse{}, err
	}

	var resp GetTodaySummaryQueryResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE requested_at >= ? AND requested_at < ?),
			COUNT(*) FILTER (WHERE status = ? AND completed_at >= ? AND completed_at < ?),
			COUNT(*) FILTER (WHERE status = ? AND cancelled_at >= ? AND cancelled_at < ?),
			COUNT(*) FILTER (WHERE status NOT IN (?, ?, ?)),
			COALESCE(SUM(payment_amount_cents) FILTER (
				WHERE completed_at >= ? AND completed_at < ?), 0)
		FROM jobs
	`,
		query.DayStart(), query.DayEnd(),
		job.Completed.String(), query.DayStart(), query.DayEnd(),
		job.Cancelled.String(), query.DayStart(), query.DayEnd(),
		job.Completed.String(), job.Cancelled.String(), job.Rejected.String(),
		query.DayStart(), query.DayEnd(),
	).Row()

	if err := row.Scan(
		&resp.JobsRequested,
		&resp.JobsCompleted,
		&resp.JobsCancelled,
		&resp.JobsActive,
		&resp.CollectedCents,
	); err != nil {
		return GetTodaySummaryQueryResponse{}, err
	}

	waitingRow := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM waitlist WHERE status = ?
	`, waitlist.Waiting.String()).Row()

	if err := waitingRow.Scan(&resp.WaitlistWaiting); err != nil {
		return GetTodaySummaryQueryResponse{}, err
	}

	return resp, nil
}
