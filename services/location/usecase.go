package location

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
)

// LocationUC defines the meetup spot usecase contract
type LocationUC interface {
	// ListMeetupSpots returns the curated meetup spot catalog
	ListMeetupSpots(ctx context.Context) ([]models.MeetupSpot, error)

	// RankedMeetupSpots returns the catalog sorted by distance from origin,
	// closest first. An unknown origin yields an empty ranking.
	RankedMeetupSpots(ctx context.Context, origin *models.Location) ([]models.RankedMeetupSpot, error)
}
