package services

import (
	"math"
	"sort"
	"time"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
)

// CancellationQuote is the charge computed by the cancellation policy before a
// job is cancelled. When IsFree is true the other fields are zero.
type CancellationQuote struct {
	ChargePercent int
	ChargeCents   int
	IsFree        bool
}

// CancellationPolicy is a domain service that computes the cancellation charge
// for a job from the configured cancellation rule table.
//
// Business rules:
//   - ASAP jobs cancel free unless a driver is already engaged; then the
//     first ASAP rule with a positive percentage applies
//   - Scheduled jobs without a scheduled time cancel free
//   - Scheduled jobs charge by how close to the scheduled time the customer
//     cancels: the highest hour threshold at or below the remaining time wins
//   - No matching rule means no charge; a thin rule table errs toward free
//     cancellation, never toward an error
//
// The policy never mutates the job. Callers pass the quote to the job's
// cancellation once they decide to proceed.
type CancellationPolicy struct{}

// NewCancellationPolicy creates a new CancellationPolicy instance.
func NewCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{}
}

// Quote computes the cancellation charge for a job priced at priceCents.
//
// For ASAP jobs driverEngaged reports whether a driver is en route, arrived or
// plowing. Scheduled jobs use scheduledFor and now to find the remaining hours
// before service. The rules slice holds the full configured table; Quote picks
// the rows for the job's type itself.
func (p CancellationPolicy) Quote(
	priceCents int,
	jobType job.Type,
	scheduledFor *time.Time,
	driverEngaged bool,
	rules []pricing.CancellationRule,
	now time.Time,
) CancellationQuote {
	percent := p.chargePercent(jobType, scheduledFor, driverEngaged, rules, now)
	if percent == 0 {
		return CancellationQuote{IsFree: true}
	}

	return CancellationQuote{
		ChargePercent: percent,
		ChargeCents:   roundHalfAwayFromZero(float64(priceCents) * float64(percent) / 100.0),
	}
}

func (p CancellationPolicy) chargePercent(
	jobType job.Type,
	scheduledFor *time.Time,
	driverEngaged bool,
	rules []pricing.CancellationRule,
	now time.Time,
) int {
	applicable := rulesForType(rules, jobType)

	if jobType == job.TypeASAP {
		if !driverEngaged {
			return 0
		}
		for _, rule := range applicable {
			if rule.ChargePercent() > 0 {
				return rule.ChargePercent()
			}
		}
		return 0
	}

	if scheduledFor == nil {
		return 0
	}

	// May be negative when the customer cancels after the scheduled time.
	hoursUntil := scheduledFor.Sub(now).Hours()

	// Widest window wins: sort thresholds descending and apply the first one
	// at or below the remaining time. Rules without a threshold are not
	// time-gated and do not apply to scheduled jobs. When hoursUntil falls
	// below every threshold the charge stays 0%.
	withThreshold := make([]pricing.CancellationRule, 0, len(applicable))
	for _, rule := range applicable {
		if rule.HoursBeforeThreshold() != nil {
			withThreshold = append(withThreshold, rule)
		}
	}
	sort.SliceStable(withThreshold, func(i, j int) bool {
		return *withThreshold[i].HoursBeforeThreshold() > *withThreshold[j].HoursBeforeThreshold()
	})

	for _, rule := range withThreshold {
		if *rule.HoursBeforeThreshold() <= hoursUntil {
			return rule.ChargePercent()
		}
	}

	return 0
}

func rulesForType(rules []pricing.CancellationRule, jobType job.Type) []pricing.CancellationRule {
	filtered := make([]pricing.CancellationRule, 0, len(rules))
	for _, rule := range rules {
		if rule.JobType() == jobType {
			filtered = append(filtered, rule)
		}
	}
	return filtered
}

// roundHalfAwayFromZero rounds to the nearest cent with half-cent amounts
// rounding away from zero, matching how the quoted charges are presented to
// customers.
func roundHalfAwayFromZero(value float64) int {
	return int(math.Round(value))
}
