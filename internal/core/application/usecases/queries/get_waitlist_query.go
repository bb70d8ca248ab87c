package queries

import (
	"errors"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

var ErrGetWaitlistQueryIsNotConstructed = errors.New(
	"GetWaitlistQuery must be created via NewGetWaitlistQuery constructor",
)

// GetWaitlistQuery retrieves every request still waiting on the waitlist.
type GetWaitlistQuery struct {
	guard guard.ConstructorGuard
}

// NewGetWaitlistQuery creates a query for the waiting entries.
func NewGetWaitlistQuery() GetWaitlistQuery {
	return GetWaitlistQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetWaitlistQuery) Validate() error {
	return q.guard.Validate(ErrGetWaitlistQueryIsNotConstructed)
}

// GetWaitlistQueryResponse is one waiting request.
type GetWaitlistQueryResponse struct {
	ID           kernel.UUID
	Address      string
	TierID       *int
	ContactPhone *string
	ContactEmail *string
	CreatedAt    time.Time
}
