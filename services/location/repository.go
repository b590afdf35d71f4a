package location

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
)

// SpotRepo provides access to the curated meetup spot catalog
type SpotRepo interface {
	List(ctx context.Context) ([]models.MeetupSpot, error)
}

// GeoRanker is an optional SpotRepo capability: repositories backed by a
// geospatial index can rank the catalog server-side
type GeoRanker interface {
	NearbyRanked(ctx context.Context, origin models.Location, radiusMeters float64) ([]models.RankedMeetupSpot, error)
}
