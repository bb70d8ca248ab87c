package configrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
)

// GormConfigRepository implements ConfigRepository using GORM.
type GormConfigRepository struct {
	db *gorm.DB
}

// NewGormConfigRepository creates a new GORM configuration repository.
func NewGormConfigRepository(db *gorm.DB) *GormConfigRepository {
	return &GormConfigRepository{db: db}
}

// GetTier retrieves a pricing tier by id.
func (r *GormConfigRepository) GetTier(ctx context.Context, id int) (pricing.Tier, error) {
	var dto TierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pricing.Tier{}, errs.NewObjectNotFoundError("tier", id)
		}
		return pricing.Tier{}, err
	}

	return tierToDomain(dto)
}

// GetActiveTiers retrieves every active pricing tier, cheapest first.
func (r *GormConfigRepository) GetActiveTiers(ctx context.Context) ([]pricing.Tier, error) {
	var dtos []TierDTO
	err := r.db.WithContext(ctx).
		Where("active").
		Order("price_cents").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	tiers := make([]pricing.Tier, 0, len(dtos))
	for _, dto := range dtos {
		tier, err := tierToDomain(dto)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, tier)
	}

	return tiers, nil
}

// GetCancellationRules retrieves the full cancellation rule table.
func (r *GormConfigRepository) GetCancellationRules(ctx context.Context) ([]pricing.CancellationRule, error) {
	var dtos []CancellationRuleDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	rules := make([]pricing.CancellationRule, 0, len(dtos))
	for _, dto := range dtos {
		rule, err := ruleToDomain(dto)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// GetActiveServiceArea retrieves the configured service area, or nil when
// none is configured.
func (r *GormConfigRepository) GetActiveServiceArea(ctx context.Context) (*kernel.ServiceArea, error) {
	var dto ServiceAreaDTO
	if err := r.db.WithContext(ctx).First(&dto, "active").Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	area, err := areaToDomain(dto)
	if err != nil {
		return nil, err
	}

	return &area, nil
}

// SaveServiceArea replaces the configured service area. The previous area is
// deactivated rather than deleted, keeping the configuration history around.
func (r *GormConfigRepository) SaveServiceArea(ctx context.Context, area kernel.ServiceArea) error {
	if err := area.Validate(); err != nil {
		return err
	}

	err := r.db.WithContext(ctx).Model(&ServiceAreaDTO{}).
		Where("active").Update("active", false).Error
	if err != nil {
		return err
	}

	dto := areaFromDomain(area)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// SaveTier creates or updates a pricing tier. Saved tiers are always active;
// existing jobs keep the quote frozen at their creation time.
func (r *GormConfigRepository) SaveTier(ctx context.Context, tier pricing.Tier) error {
	if err := tier.Validate(); err != nil {
		return err
	}

	dto := tierFromDomain(tier)
	return r.db.WithContext(ctx).Save(&dto).Error
}

// ReplaceCancellationRules swaps the full rule table for the given set in one
// pass. An empty set clears the table, which makes every cancellation free.
func (r *GormConfigRepository) ReplaceCancellationRules(ctx context.Context, rules []pricing.CancellationRule) error {
	for _, rule := range rules {
		if err := rule.Validate(); err != nil {
			return err
		}
	}

	err := r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&CancellationRuleDTO{}).Error
	if err != nil {
		return err
	}

	if len(rules) == 0 {
		return nil
	}

	dtos := make([]CancellationRuleDTO, 0, len(rules))
	for _, rule := range rules {
		dtos = append(dtos, ruleFromDomain(rule))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
