package kernel_test

import (
	"fmt"
	"testing"

	"github.com/tokendad/ApexPlow/internal/core/domain/model/kernel"
	"github.com/tokendad/ApexPlow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustGeoPoint(t *testing.T, lat, lng float64) kernel.GeoPoint {
	t.Helper()
	p, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)
	return p
}

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		testCases := []struct {
			lat float64
			lng float64
		}{
			{0, 0},
			{42.3601, -71.0589},
			{-90, -180},
			{90, 180},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("(%v,%v)", tc.lat, tc.lng), func(t *testing.T) {
				p, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.NoError(t, err)
				assert.InDelta(t, tc.lat, p.Lat(), 0)
				assert.InDelta(t, tc.lng, p.Lng(), 0)
			})
		}
	})

	t.Run("should reject out-of-range coordinates", func(t *testing.T) {
		testCases := []struct {
			name string
			lat  float64
			lng  float64
		}{
			{"latitude too high", 90.1, 0},
			{"latitude too low", -90.1, 0},
			{"longitude too high", 0, 180.1},
			{"longitude too low", 0, -180.1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := kernel.NewGeoPoint(tc.lat, tc.lng)
				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
			})
		}
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var p kernel.GeoPoint
		require.Error(t, p.Validate())
	})
}

func TestGeoPoint_DistanceMiles(t *testing.T) {
	t.Run("distance to itself is zero", func(t *testing.T) {
		points := []kernel.GeoPoint{
			mustGeoPoint(t, 0, 0),
			mustGeoPoint(t, 42.3601, -71.0589),
			mustGeoPoint(t, -33.8688, 151.2093),
		}

		for _, p := range points {
			d, err := p.DistanceMiles(p)
			require.NoError(t, err)
			assert.InDelta(t, 0, d, 1e-9)
		}
	})

	t.Run("distance is symmetric", func(t *testing.T) {
		boston := mustGeoPoint(t, 42.3601, -71.0589)
		providence := mustGeoPoint(t, 41.824, -71.4128)

		d1, err := boston.DistanceMiles(providence)
		require.NoError(t, err)
		d2, err := providence.DistanceMiles(boston)
		require.NoError(t, err)

		assert.InDelta(t, d1, d2, 1e-9)
	})

	t.Run("Boston to Providence is about 41 miles", func(t *testing.T) {
		boston := mustGeoPoint(t, 42.3601, -71.0589)
		providence := mustGeoPoint(t, 41.824, -71.4128)

		d, err := boston.DistanceMiles(providence)
		require.NoError(t, err)
		assert.Greater(t, d, 40.0)
		assert.Less(t, d, 43.0)
	})

	t.Run("unconstructed point fails", func(t *testing.T) {
		boston := mustGeoPoint(t, 42.3601, -71.0589)
		var zero kernel.GeoPoint

		_, err := boston.DistanceMiles(zero)
		require.Error(t, err)
	})
}

func TestNewServiceArea(t *testing.T) {
	center := mustGeoPoint(t, 42.3601, -71.0589)

	t.Run("should create area with positive radius", func(t *testing.T) {
		area, err := kernel.NewServiceArea(center, 25)
		require.NoError(t, err)
		assert.InDelta(t, 25, area.RadiusMiles(), 0)

		equal, err := area.Center().IsEqual(center)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject non-positive radius", func(t *testing.T) {
		for _, radius := range []float64{0, -1} {
			_, err := kernel.NewServiceArea(center, radius)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject unconstructed center", func(t *testing.T) {
		var zero kernel.GeoPoint
		_, err := kernel.NewServiceArea(zero, 25)
		require.Error(t, err)
	})
}

func TestServiceArea_Contains(t *testing.T) {
	boston := mustGeoPoint(t, 42.3601, -71.0589)
	providence := mustGeoPoint(t, 41.824, -71.4128)

	t.Run("point inside radius is contained", func(t *testing.T) {
		area, err := kernel.NewServiceArea(boston, 50)
		require.NoError(t, err)

		within, err := area.Contains(providence)
		require.NoError(t, err)
		assert.True(t, within)
	})

	t.Run("point outside radius is not contained", func(t *testing.T) {
		area, err := kernel.NewServiceArea(boston, 10)
		require.NoError(t, err)

		within, err := area.Contains(providence)
		require.NoError(t, err)
		assert.False(t, within)
	})

	t.Run("boundary is inclusive", func(t *testing.T) {
		distance, err := boston.DistanceMiles(providence)
		require.NoError(t, err)

		area, err := kernel.NewServiceArea(boston, distance)
		require.NoError(t, err)

		within, err := area.Contains(providence)
		require.NoError(t, err)
		assert.True(t, within)
	})

	t.Run("center is always contained", func(t *testing.T) {
		area, err := kernel.NewServiceArea(boston, 1)
		require.NoError(t, err)

		within, err := area.Contains(boston)
		require.NoError(t, err)
		assert.True(t, within)
	})
}
