package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/waitlist"
)

// GetWaitlistQueryHandler reads the waiting entries from the database.
type GetWaitlistQueryHandler struct {
	db *gorm.DB
}

// NewGetWaitlistQueryHandler creates a handler for waitlist queries.
// Requires a GORM database connection for query execution.
func NewGetWaitlistQueryHandler(db *gorm.DB) GetWaitlistQueryHandler {
	return GetWaitlistQueryHandler{db: db}
}

// Handle executes the query. Only entries still waiting are returned,
// oldest first, so the operator promotes in arrival order.
func (h GetWaitlistQueryHandler) Handle(
	ctx context.Context,
	query GetWaitlistQuery,
) ([]GetWaitlistQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetWaitlistQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			address,
			tier_id,
			contact_phone,
			contact_email,
			created_at
		FROM waitlist
		WHERE status = ?
		ORDER BY created_at
	`, waitlist.Waiting.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var entryResp GetWaitlistQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&entryResp.Address,
			&entryResp.TierID,
			&entryResp.ContactPhone,
			&entryResp.ContactEmail,
			&entryResp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		entryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		entryResp.ID = entryID

		entries = append(entries, entryResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
