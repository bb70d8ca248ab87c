// Package configrepo provides access to the dispatch configuration
// tables: pricing tiers, the cancellation rule table, and the service area.
package configrepo

import (
	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
)

// TierDTO represents one row of the pricing tier table.
type TierDTO struct {
	ID         int `gorm:"primaryKey"`
	Label      string
	PriceCents int
	Active     bool
}

// TableName specifies the database table name for pricing tiers.
func (TierDTO) TableName() string {
	return "pricing_config"
}

// CancellationRuleDTO represents one row of the cancellation rule table.
type CancellationRuleDTO struct {
	ID                   int `gorm:"primaryKey;autoIncrement"`
	JobType              string
	HoursBeforeThreshold *float64
	ChargePercent        int
	Description          string
}

// TableName specifies the database table name for cancellation rules.
func (CancellationRuleDTO) TableName() string {
	return "cancellation_rules"
}

// ServiceAreaDTO represents the operator's configured service area.
type ServiceAreaDTO struct {
	ID          int `gorm:"primaryKey;autoIncrement"`
	CenterLat   float64
	CenterLng   float64
	RadiusMiles float64
	Active      bool
}

// TableName specifies the database table name for the service area.
func (ServiceAreaDTO) TableName() string {
	return "service_area_config"
}

func tierToDomain(dto TierDTO) (pricing.Tier, error) {
	return pricing.NewTier(dto.ID, dto.Label, dto.PriceCents)
}

func ruleToDomain(dto CancellationRuleDTO) (pricing.CancellationRule, error) {
	jobType, err := job.TypeFromString(dto.JobType)
	if err != nil {
		return pricing.CancellationRule{}, err
	}

	return pricing.NewCancellationRule(jobType, dto.HoursBeforeThreshold,
		dto.ChargePercent, dto.Description)
}

func tierFromDomain(tier pricing.Tier) TierDTO {
	return TierDTO{
		ID:         tier.ID(),
		Label:      tier.Label(),
		PriceCents: tier.PriceCents(),
		Active:     true,
	}
}

func ruleFromDomain(rule pricing.CancellationRule) CancellationRuleDTO {
	return CancellationRuleDTO{
		JobType:              rule.JobType().String(),
		HoursBeforeThreshold: rule.HoursBeforeThreshold(),
		ChargePercent:        rule.ChargePercent(),
		Description:          rule.Description(),
	}
}

func areaToDomain(dto ServiceAreaDTO) (kernel.ServiceArea, error) {
	center, err := kernel.NewGeoPoint(dto.CenterLat, dto.CenterLng)
	if err != nil {
		return kernel.ServiceArea{}, err
	}

	return kernel.NewServiceArea(center, dto.RadiusMiles)
}

func areaFromDomain(area kernel.ServiceArea) ServiceAreaDTO {
	return ServiceAreaDTO{
		CenterLat:   area.Center().Lat(),
		CenterLng:   area.Center().Lng(),
		RadiusMiles: area.RadiusMiles(),
		Active:      true,
	}
}
