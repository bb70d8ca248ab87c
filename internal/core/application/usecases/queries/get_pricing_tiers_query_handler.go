package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPricingTiersQueryHandler reads the active pricing tiers.
type GetPricingTiersQueryHandler struct {
	db *gorm.DB
}

// NewGetPricingTiersQueryHandler creates a handler for tier queries.
// Requires a GORM database connection for query execution.
func NewGetPricingTiersQueryHandler(db *gorm.DB) GetPricingTiersQueryHandler {
	return GetPricingTiersQueryHandler{db: db}
}

// Handle executes the query. Tiers come back cheapest first.
func (h GetPricingTiersQueryHandler) Handle(
	ctx context.Context,
	query GetPricingTiersQuery,
) ([]GetPricingTiersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tiers := make([]GetPricingTiersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			label,
			price_cents
		FROM pricing_config
		WHERE active
		ORDER BY price_cents
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var tierResp GetPricingTiersQueryResponse

		err = rows.Scan(
			&tierResp.ID,
			&tierResp.Label,
			&tierResp.PriceCents,
		)
		if err != nil {
			return nil, err
		}

		tiers = append(tiers, tierResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return tiers, nil
}
