// Package queries contains read-only operations over the dispatch data.
// Query handlers read the database directly with raw SQL, bypassing the
// aggregates, since nothing is mutated on the read path of the CQRS split.
package queries

import (
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrGetJobBoardQueryIsNotConstructed = errors.New(
	"GetJobBoardQuery must be created via NewGetJobBoardQuery constructor",
)

// GetJobBoardQuery retrieves every job that has not reached a terminal
// status, for the operator's dispatch board.
type GetJobBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetJobBoardQuery creates a query for the dispatch board.
// This is a parameterless query that fetches all live jobs.
func NewGetJobBoardQuery() GetJobBoardQuery {
	return GetJobBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetJobBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetJobBoardQueryIsNotConstructed)
}

// GetJobBoardQueryResponse is one row on the dispatch board.
type GetJobBoardQueryResponse struct {
	ID               kernel.UUID
	Address          string
	Status           string
	JobType          string
	QuotedPriceCents int
	FinalPriceCents  *int
	RequestedAt      time.Time
	ScheduledFor     *time.Time
}
