package job

import (
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
)

// StatusChange is an immutable record of one status transition.
// The repository persists pending changes together with the job row in a
// single transaction, so a reader never observes a status without its
// matching history entry.
type StatusChange struct {
	JobID      kernel.UUID
	From       Status
	To         Status
	ActorID    kernel.UUID
	OccurredAt time.Time
}

// PriceChange is an immutable record of one admin price override.
type PriceChange struct {
	JobID         kernel.UUID
	OldPriceCents int
	NewPriceCents int
	ChangedByID   kernel.UUID
	OccurredAt    time.Time
}
