package analytics

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
)

// AnalyticsUC defines the analytics usecase contract
type AnalyticsUC interface {
	// RequestAnalytics aggregates a live snapshot over the active request
	// store. It is recomputed on every call, never cached.
	RequestAnalytics(ctx context.Context) (*models.RequestAnalytics, error)
}
