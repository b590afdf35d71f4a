package usecase

import (
	"context"
	"fmt"

	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/services/requests"
)

// AnalyticsUC implements the analytics usecase over the active request store
type AnalyticsUC struct {
	requestRepo requests.RequestRepo
}

// NewAnalyticsUC creates a new analytics usecase
func NewAnalyticsUC(requestRepo requests.RequestRepo) *AnalyticsUC {
	return &AnalyticsUC{requestRepo: requestRepo}
}

// RequestAnalytics aggregates totals, kind and urgency breakdowns, and the
// average amount over the active requests. An empty store reports an average
// of zero.
func (uc *AnalyticsUC) RequestAnalytics(ctx context.Context) (*models.RequestAnalytics, error) {
	activeRequests, err := uc.requestRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	snapshot := &models.RequestAnalytics{
		ByKind:    make(map[models.RequestKind]int),
		ByUrgency: make(map[models.Urgency]int),
	}
	for _, request := range activeRequests {
		snapshot.TotalRequests++
		snapshot.TotalAmount += request.Amount
		snapshot.ByKind[request.Kind]++
		snapshot.ByUrgency[request.Urgency]++
	}
	if snapshot.TotalRequests > 0 {
		snapshot.AverageAmount = snapshot.TotalAmount / float64(snapshot.TotalRequests)
	}
	return snapshot, nil
}
