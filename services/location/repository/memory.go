package repository

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
)

// DefaultMeetupSpots returns the curated demo catalog of public handover
// locations around the demo neighborhood
func DefaultMeetupSpots(geohashPrecision uint) []models.MeetupSpot {
	spots := []models.MeetupSpot{
		{
			Name:        "Central Park Bench",
			Location:    models.Location{Latitude: 40.7128, Longitude: -74.0060},
			SafetyLevel: models.SafetyHigh,
		},
		{
			Name:        "Coffee Shop Entrance",
			Location:    models.Location{Latitude: 40.7130, Longitude: -74.0058},
			SafetyLevel: models.SafetyHigh,
		},
		{
			Name:        "Subway Station Platform",
			Location:    models.Location{Latitude: 40.7125, Longitude: -74.0062},
			SafetyLevel: models.SafetyMedium,
		},
		{
			Name:        "Shopping Mall Food Court",
			Location:    models.Location{Latitude: 40.7132, Longitude: -74.0055},
			SafetyLevel: models.SafetyHigh,
		},
	}
	for i := range spots {
		spots[i].Geohash = utils.EncodeLocation(spots[i].Location, geohashPrecision)
	}
	return spots
}

// MemorySpotRepo serves the meetup spot catalog from memory
type MemorySpotRepo struct {
	spots []models.MeetupSpot
}

// NewMemorySpotRepo creates a spot repository over a fixed catalog
func NewMemorySpotRepo(spots []models.MeetupSpot) *MemorySpotRepo {
	return &MemorySpotRepo{spots: spots}
}

// List returns a copy of the catalog
func (r *MemorySpotRepo) List(ctx context.Context) ([]models.MeetupSpot, error) {
	spots := make([]models.MeetupSpot, len(r.spots))
	copy(spots, r.spots)
	return spots, nil
}
