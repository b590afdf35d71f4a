package usecase

import (
	"context"
	"fmt"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
)

// NearbyRequests keeps the candidates within maxDistanceMeters of origin.
// Input order is preserved: the discovery feed is a flat list, distance
// ordering is only used for meetup spot ranking. Candidates without a known
// location stay in the feed with an unknown distance; absence degrades the
// proximity filter, it never excludes.
func NearbyRequests(origin models.Location, candidates []models.Request, maxDistanceMeters float64) []models.NearbyRequest {
	nearby := make([]models.NearbyRequest, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Location == nil {
			nearby = append(nearby, models.NearbyRequest{Request: candidate})
			continue
		}
		distance := utils.DistanceMeters(origin, *candidate.Location)
		if distance > maxDistanceMeters {
			continue
		}
		d := distance
		nearby = append(nearby, models.NearbyRequest{Request: candidate, DistanceMeters: &d})
	}
	return nearby
}

// Feed returns the discovery feed for an observer: requests raised by other
// users, filtered by proximity when the observer location is known. An
// unknown origin degrades to the unfiltered list with unknown distances.
func (uc *RequestUC) Feed(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error) {
	candidates, err := uc.requestRepo.ListExcluding(ctx, observerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	if origin == nil {
		feed := make([]models.NearbyRequest, 0, len(candidates))
		for _, candidate := range candidates {
			feed = append(feed, models.NearbyRequest{Request: candidate})
		}
		return feed, nil
	}

	return NearbyRequests(*origin, candidates, maxDistanceMeters), nil
}
