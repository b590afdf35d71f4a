package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
	"github.com/liquex/liquex/services/location"
)

// LocationUC implements the meetup spot usecase
type LocationUC struct {
	spotRepo location.SpotRepo
}

// NewLocationUC creates a new location usecase
func NewLocationUC(spotRepo location.SpotRepo) *LocationUC {
	return &LocationUC{spotRepo: spotRepo}
}

// ListMeetupSpots returns the curated meetup spot catalog
func (uc *LocationUC) ListMeetupSpots(ctx context.Context) ([]models.MeetupSpot, error) {
	return uc.spotRepo.List(ctx)
}

// RankedMeetupSpots returns the catalog sorted by distance from origin,
// closest first. Spots at equal distance keep their catalog order. An
// unknown origin yields an empty ranking rather than an arbitrary one.
func (uc *LocationUC) RankedMeetupSpots(ctx context.Context, origin *models.Location) ([]models.RankedMeetupSpot, error) {
	if origin == nil {
		return []models.RankedMeetupSpot{}, nil
	}

	spots, err := uc.spotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list meetup spots: %w", err)
	}

	if ranker, ok := uc.spotRepo.(location.GeoRanker); ok {
		ranked, err := ranker.NearbyRanked(ctx, *origin, 0)
		// The ranking must be a permutation of the catalog; an unavailable
		// or incomplete geo index falls back to in-process ranking
		if err == nil && len(ranked) == len(spots) {
			return ranked, nil
		}
		if err != nil {
			logger.Warn("Geo index ranking failed, ranking in process", logger.ErrorField(err))
		}
	}

	ranked := make([]models.RankedMeetupSpot, 0, len(spots))
	for _, spot := range spots {
		ranked = append(ranked, models.RankedMeetupSpot{
			MeetupSpot:     spot,
			DistanceMeters: utils.DistanceMeters(*origin, spot.Location),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceMeters < ranked[j].DistanceMeters
	})
	return ranked, nil
}
