package pricing_test

import (
	"testing"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/job"
	"github.com/tokendad/ApexPlow/internal/core/domain/model/pricing"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTier(t *testing.T) {
	t.Run("creates valid tier", func(t *testing.T) {
		tier, err := pricing.NewTier(2, "2-Car Driveway", 8500)
		require.NoError(t, err)

		assert.Equal(t, 2, tier.ID())
		assert.Equal(t, "2-Car Driveway", tier.Label())
		assert.Equal(t, 8500, tier.PriceCents())
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		testCases := []struct {
			name       string
			id         int
			label      string
			priceCents int
		}{
			{"zero id", 0, "2-Car Driveway", 8500},
			{"negative id", -1, "2-Car Driveway", 8500},
			{"empty label", 1, "", 8500},
			{"zero price", 1, "2-Car Driveway", 0},
			{"negative price", 1, "2-Car Driveway", -100},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := pricing.NewTier(tc.id, tc.label, tc.priceCents)
				require.Error(t, err)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var tier pricing.Tier
		require.ErrorIs(t, tier.Validate(), pricing.ErrTierIsNotConstructed)
	})
}

func TestNewCancellationRule(t *testing.T) {
	t.Run("creates time-gated scheduled rule", func(t *testing.T) {
		threshold := 12.0
		rule, err := pricing.NewCancellationRule(job.TypeScheduled, &threshold, 0, "Cancel >12 hours before: free")
		require.NoError(t, err)

		assert.Equal(t, job.TypeScheduled, rule.JobType())
		require.NotNil(t, rule.HoursBeforeThreshold())
		assert.InDelta(t, 12.0, *rule.HoursBeforeThreshold(), 0)
		assert.Equal(t, 0, rule.ChargePercent())
	})

	t.Run("creates non-time-gated asap rule", func(t *testing.T) {
		rule, err := pricing.NewCancellationRule(job.TypeASAP, nil, 25, "Cancel after driver en-route: 25% charge")
		require.NoError(t, err)

		assert.Nil(t, rule.HoursBeforeThreshold())
		assert.Equal(t, 25, rule.ChargePercent())
	})

	t.Run("rejects charge percent out of range", func(t *testing.T) {
		for _, percent := range []int{-1, 101} {
			_, err := pricing.NewCancellationRule(job.TypeASAP, nil, percent, "")
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("rejects invalid job type", func(t *testing.T) {
		_, err := pricing.NewCancellationRule(job.TypeUnknown, nil, 25, "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var rule pricing.CancellationRule
		require.ErrorIs(t, rule.Validate(), pricing.ErrCancellationRuleIsNotConstructed)
	})
}
