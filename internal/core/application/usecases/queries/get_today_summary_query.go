package queries

import (
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var (
	ErrGetTodaySummaryQueryIsNotConstructed = errors.New(
		"GetTodaySummaryQuery must be created via NewGetTodaySummaryQuery constructor",
	)
	ErrDayIsRequired = errors.New("day must not be zero")
)

// GetTodaySummaryQuery retrieves the operator's dashboard counters for one
// calendar day.
type GetTodaySummaryQuery struct { //nolint:recvcheck //using for validation
	dayStart time.Time

	guard guard.ConstructorGuard
}

// NewGetTodaySummaryQuery creates a summary query for the day containing the
// given time. The day boundary is taken in the supplied time's location.
func NewGetTodaySummaryQuery(day time.Time) (GetTodaySummaryQuery, error) {
	summaryQuery := GetTodaySummaryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := summaryQuery.setDay(day); err != nil {
		return GetTodaySummaryQuery{}, err
	}

	return summaryQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTodaySummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetTodaySummaryQueryIsNotConstructed)
}

// DayStart returns midnight at the start of the summarized day.
func (q GetTodaySummaryQuery) DayStart() time.Time {
	return q.dayStart
}

// DayEnd returns midnight at the end of the summarized day.
func (q GetTodaySummaryQuery) DayEnd() time.Time {
	return q.dayStart.AddDate(0, 0, 1)
}

func (q *GetTodaySummaryQuery) setDay(day time.Time) error {
	if day.IsZero() {
		return ErrDayIsRequired
	}

	year, month, date := day.Date()
	q.dayStart = time.Date(year, month, date, 0, 0, 0, 0, day.Location())
	return nil
}

// GetTodaySummaryQueryResponse holds the dashboard counters.
type GetTodaySummaryQueryResponse struct {
	JobsRequested   int
	JobsCompleted   int
	JobsCancelled   int
	JobsActive      int
	CollectedCents  int
	WaitlistWaiting int
}
