package repository

import (
	"context"
	"fmt"

	"github.com/liquex/liquex/internal/pkg/database"
	"github.com/liquex/liquex/internal/pkg/models"
)

// keyMeetupSpotsGeo is the Redis geo set holding the spot catalog
const keyMeetupSpotsGeo = "meetup:spots:geo"

// geoRankRadiusMeters must reach any spot from any origin; ranking has no
// cutoff, so the default radius spans half the earth's circumference
const geoRankRadiusMeters = 20100000.0

// RedisSpotRepo mirrors the meetup spot catalog into a Redis geo set and
// ranks it with GEORADIUS
type RedisSpotRepo struct {
	client *database.RedisClient
	spots  map[string]models.MeetupSpot
	order  []string
}

// NewRedisSpotRepo seeds the geo set from the catalog
func NewRedisSpotRepo(ctx context.Context, client *database.RedisClient, spots []models.MeetupSpot) (*RedisSpotRepo, error) {
	repo := &RedisSpotRepo{
		client: client,
		spots:  make(map[string]models.MeetupSpot, len(spots)),
		order:  make([]string, 0, len(spots)),
	}
	for _, spot := range spots {
		if err := client.GeoAdd(ctx, keyMeetupSpotsGeo, spot.Location.Longitude, spot.Location.Latitude, spot.Name); err != nil {
			return nil, fmt.Errorf("failed to seed meetup spot %q: %w", spot.Name, err)
		}
		repo.spots[spot.Name] = spot
		repo.order = append(repo.order, spot.Name)
	}
	return repo, nil
}

// List returns the catalog in seed order
func (r *RedisSpotRepo) List(ctx context.Context) ([]models.MeetupSpot, error) {
	spots := make([]models.MeetupSpot, 0, len(r.order))
	for _, name := range r.order {
		spots = append(spots, r.spots[name])
	}
	return spots, nil
}

// NearbyRanked ranks the catalog by distance from origin using the Redis geo
// index, closest first
func (r *RedisSpotRepo) NearbyRanked(ctx context.Context, origin models.Location, radiusMeters float64) ([]models.RankedMeetupSpot, error) {
	if radiusMeters <= 0 {
		radiusMeters = geoRankRadiusMeters
	}
	locations, err := r.client.GeoRadius(ctx, keyMeetupSpotsGeo, origin.Longitude, origin.Latitude, radiusMeters, "m")
	if err != nil {
		return nil, fmt.Errorf("failed to rank meetup spots: %w", err)
	}

	ranked := make([]models.RankedMeetupSpot, 0, len(locations))
	for _, loc := range locations {
		spot, exists := r.spots[loc.Name]
		if !exists {
			continue
		}
		ranked = append(ranked, models.RankedMeetupSpot{
			MeetupSpot:     spot,
			DistanceMeters: loc.Dist,
		})
	}
	return ranked, nil
}
