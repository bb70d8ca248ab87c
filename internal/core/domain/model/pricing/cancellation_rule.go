package pricing

import (
	"errors"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"
	"github.com/tokendad/ApexPlow/internal/pkg/guard"
)

// ErrCancellationRuleIsNotConstructed is returned when validating a rule that
// was not created via NewCancellationRule.
var ErrCancellationRuleIsNotConstructed = errors.New(
	"CancellationRule must be created via NewCancellationRule constructor")

const (
	minChargePercent = 0
	maxChargePercent = 100
)

// CancellationRule is one row of the externally configured cancellation
// policy. For scheduled jobs, HoursBeforeThreshold is the lower bound (in
// hours before the booked time) of the window the rule covers; a nil
// threshold marks a rule that is not time-gated, which is how ASAP rules are
// configured.
//
// Rules are a static configuration set: the pricing policy receives the full
// list on every call and never caches it.
type CancellationRule struct { //nolint:recvcheck //using for validation
	jobType              job.Type
	hoursBeforeThreshold *float64
	chargePercent        int
	description          string

	guard guard.ConstructorGuard
}

// NewCancellationRule creates a rule for the given job type.
// chargePercent must be within [0, 100].
func NewCancellationRule(
	jobType job.Type,
	hoursBeforeThreshold *float64,
	chargePercent int,
	description string,
) (CancellationRule, error) {
	r := CancellationRule{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setJobType(jobType),
		r.setChargePercent(chargePercent),
	); err != nil {
		return CancellationRule{}, err
	}

	r.hoursBeforeThreshold = hoursBeforeThreshold
	return r, nil
}

// Validate ensures the rule was created through the constructor.
func (r CancellationRule) Validate() error {
	return r.guard.Validate(ErrCancellationRuleIsNotConstructed)
}

// JobType returns the job type the rule applies to.
func (r CancellationRule) JobType() job.Type {
	return r.jobType
}

// HoursBeforeThreshold returns the lower bound of the rule's charging window,
// or nil for rules that are not time-gated.
func (r CancellationRule) HoursBeforeThreshold() *float64 {
	return r.hoursBeforeThreshold
}

// ChargePercent returns the percentage of the quoted price charged on
// cancellation within this rule's window.
func (r CancellationRule) ChargePercent() int {
	return r.chargePercent
}

// Description returns the operator-facing explanation of the rule.
func (r CancellationRule) Description() string {
	return r.description
}

func (r *CancellationRule) setJobType(t job.Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	r.jobType = t
	return nil
}

func (r *CancellationRule) setChargePercent(percent int) error {
	if percent < minChargePercent || percent > maxChargePercent {
		return errs.NewValueIsOutOfRangeError("chargePercent", percent, minChargePercent, maxChargePercent)
	}
	r.chargePercent = percent
	return nil
}
