// Package waitlistrepo provides data transfer objects and mapping functions
// for waitlist persistence. Status changes out of the waiting state are
// applied as a compare-and-swap so concurrent promoters cannot both claim the
// same entry.
package waitlistrepo

import (
	"time"

	"github.com/google/uuid"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// EntryDTO represents the database structure for persisting waitlist entries.
type EntryDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	Address    string
	Location   LocationDTO `gorm:"embedded"`
	TierID     *int

	Notes        *string
	ContactPhone *string
	ContactEmail *string

	Status        string     `gorm:"index"`
	PromotedJobID *uuid.UUID `gorm:"type:uuid"`
	PromotedAt    *time.Time

	CreatedAt time.Time
}

// TableName specifies the database table name for waitlist entries.
func (EntryDTO) TableName() string {
	return "waitlist"
}

// LocationDTO represents the embedded job site coordinates within the waitlist table.
type LocationDTO struct {
	Lat float64 `gorm:"type:double precision"`
	Lng float64 `gorm:"type:double precision"`
}

// fromDomain converts a waitlist entry to its database representation.
func fromDomain(entry *waitlist.Entry) EntryDTO {
	var promotedJobID *uuid.UUID
	if id := entry.PromotedJobID(); id != nil {
		raw := id.Bytes()
		promotedJobID = &raw
	}

	return EntryDTO{
		ID:         entry.ID().Bytes(),
		CustomerID: entry.CustomerID().Bytes(),
		Address:    entry.Address(),
		Location: LocationDTO{
			Lat: entry.Location().Lat(),
			Lng: entry.Location().Lng(),
		},
		TierID: entry.TierID(),

		Notes:        entry.Notes(),
		ContactPhone: entry.ContactPhone(),
		ContactEmail: entry.ContactEmail(),

		Status:        entry.Status().String(),
		PromotedJobID: promotedJobID,
		PromotedAt:    entry.PromotedAt(),

		CreatedAt: entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a waitlist entry using RestoreEntry.
func toDomain(dto EntryDTO) (*waitlist.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	status, err := waitlist.EntryStatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var promotedJobID *kernel.UUID
	if dto.PromotedJobID != nil {
		jobID, jobErr := kernel.UUIDFromBytes((*dto.PromotedJobID)[:])
		if jobErr != nil {
			return nil, jobErr
		}
		promotedJobID = &jobID
	}

	return waitlist.RestoreEntry(
		id,
		customerID,
		dto.Address,
		location,
		dto.TierID,
		dto.Notes,
		dto.ContactPhone,
		dto.ContactEmail,
		status,
		promotedJobID,
		dto.PromotedAt,
		dto.CreatedAt,
	)
}
