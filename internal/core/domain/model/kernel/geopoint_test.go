package kernel_test

import (
	"testing"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeoPoint(t *testing.T) {
	t.Run("should create point with valid coordinates", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(40.7128, -74.0060)

		require.NoError(t, err)
		assert.InEpsilon(t, 40.7128, point.Latitude(), 1e-9)
		assert.InEpsilon(t, -74.0060, point.Longitude(), 1e-9)
	})

	t.Run("should accept boundary coordinates", func(t *testing.T) {
		boundaries := [][2]float64{
			{kernel.LatitudeMin, 0},
			{kernel.LatitudeMax, 0},
			{0, kernel.LongitudeMin},
			{0, kernel.LongitudeMax},
		}

		for _, b := range boundaries {
			_, err := kernel.NewGeoPoint(b[0], b[1])
			require.NoError(t, err)
		}
	})

	t.Run("should reject out-of-range latitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(90.5, 0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject out-of-range longitude", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(0, -180.5)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should join both coordinate errors", func(t *testing.T) {
		_, err := kernel.NewGeoPoint(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestGeoPoint_Validate(t *testing.T) {
	t.Run("constructed point is valid", func(t *testing.T) {
		point, err := kernel.NewGeoPoint(51.5074, -0.1278)

		require.NoError(t, err)
		require.NoError(t, point.Validate())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var point kernel.GeoPoint

		err := point.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrGeoPointIsNotConstructed, err)
	})
}

func TestGeoPoint_IsEqual(t *testing.T) {
	t.Run("equal coordinates compare equal", func(t *testing.T) {
		p1, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		p2, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		p3, _ := kernel.NewGeoPoint(34.0522, -118.2437)

		equal, err := p1.IsEqual(p2)
		require.NoError(t, err)
		assert.True(t, equal)

		equal, err = p1.IsEqual(p3)
		require.NoError(t, err)
		assert.False(t, equal)
	})

	t.Run("comparison with zero value fails", func(t *testing.T) {
		p, _ := kernel.NewGeoPoint(40.7128, -74.0060)
		var zero kernel.GeoPoint

		_, err := p.IsEqual(zero)

		require.Error(t, err)
	})
}
