package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_Identity(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{-7.7956, 110.3695},
		{51.5074, -0.1278},
		{-90, 180},
	}
	for _, p := range points {
		assert.InDelta(t, 0, DistanceKm(p[0], p[1], p[0], p[1]), 1e-9)
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{0, 0, 0, 0.05},
		{-7.7956, 110.3695, -6.2088, 106.8456},
		{51.5074, -0.1278, 48.8566, 2.3522},
	}
	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistanceKm_KnownDistances(t *testing.T) {
	// 0.05 degrees of longitude at the equator is roughly 5.56 km.
	assert.InDelta(t, 5.56, DistanceKm(0, 0, 0, 0.05), 0.05)
	// Jakarta to Yogyakarta is roughly 430 km.
	assert.InDelta(t, 430, DistanceKm(-6.2088, 106.8456, -7.7956, 110.3695), 15)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(0, 0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}
