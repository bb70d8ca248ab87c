package ports

import (
	"context"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// WaitlistRepository defines the persistence contract for waitlist entries.
type WaitlistRepository interface {
	// Add persists a new waitlist entry to storage.
	Add(ctx context.Context, aggregate *waitlist.Entry) error

	// Update persists changes to an existing waitlist entry.
	//
	// When the update moves the entry out of the waiting status it is applied
	// as a compare-and-swap against the stored status: if another writer
	// already moved the entry, Update fails with an AlreadyPromotedError and
	// writes nothing. This is what keeps concurrent promotions of the same
	// entry from both succeeding.
	Update(ctx context.Context, aggregate *waitlist.Entry) error

	// Get retrieves a waitlist entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*waitlist.Entry, error)

	// GetAllWaiting retrieves every entry still in the waiting status,
	// oldest first.
	GetAllWaiting(ctx context.Context) ([]*waitlist.Entry, error)

	// GetStaleWaiting retrieves waiting entries created before the cutoff.
	// Used by the expiry sweep.
	GetStaleWaiting(ctx context.Context, cutoff time.Time) ([]*waitlist.Entry, error)
}
