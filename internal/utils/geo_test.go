package utils

import (
	"testing"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestDistanceMeters(t *testing.T) {
	tests := []struct {
		name      string
		a         models.Location
		b         models.Location
		expected  float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         models.Location{Latitude: 40.7128, Longitude: -74.0060},
			b:         models.Location{Latitude: 40.7128, Longitude: -74.0060},
			expected:  0.0,
			tolerance: 0.001,
		},
		{
			name:      "one degree of longitude at the equator",
			a:         models.Location{Latitude: 0.0, Longitude: 0.0},
			b:         models.Location{Latitude: 0.0, Longitude: 1.0},
			expected:  111195.0, // ~111.2 km
			tolerance: 50.0,
		},
		{
			name:      "adjacent blocks in Manhattan",
			a:         models.Location{Latitude: 40.7128, Longitude: -74.0060},
			b:         models.Location{Latitude: 40.7130, Longitude: -74.0058},
			expected:  28.0,
			tolerance: 2.0,
		},
		{
			name:      "across the demo neighborhood",
			a:         models.Location{Latitude: 40.7128, Longitude: -74.0060},
			b:         models.Location{Latitude: 40.7125, Longitude: -74.0062},
			expected:  37.0,
			tolerance: 3.0,
		},
		{
			name:      "well outside walking range",
			a:         models.Location{Latitude: 40.7128, Longitude: -74.0060},
			b:         models.Location{Latitude: 40.7528, Longitude: -74.0060},
			expected:  4448.0, // 0.04 degrees of latitude
			tolerance: 10.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, DistanceMeters(tt.a, tt.b), tt.tolerance)
		})
	}
}

func TestDistanceMeters_Symmetric(t *testing.T) {
	a := models.Location{Latitude: 40.7128, Longitude: -74.0060}
	b := models.Location{Latitude: 40.7130, Longitude: -74.0058}

	assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 0.0001)
}

func TestEncodeLocation(t *testing.T) {
	location := models.Location{Latitude: 40.7128, Longitude: -74.0060}

	hash := EncodeLocation(location, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, location.Latitude, lat, 0.01)
	assert.InDelta(t, location.Longitude, lng, 0.01)
}

func TestGeohashNeighbors(t *testing.T) {
	hash := EncodeLocation(models.Location{Latitude: 40.7128, Longitude: -74.0060}, 7)

	neighbors := GeohashNeighbors(hash)
	assert.Len(t, neighbors, 8)
	for _, neighbor := range neighbors {
		assert.Len(t, neighbor, 7)
		assert.NotEqual(t, hash, neighbor)
	}
}
