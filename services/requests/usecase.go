package requests

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
)

// RequestUC represents the request lifecycle usecase interface
type RequestUC interface {
	// raise and discovery
	Raise(ctx context.Context, requesterID string, input *models.RaiseRequestInput) (*models.Request, error)
	Feed(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error)
	Get(ctx context.Context, requestID string) (*models.Request, error)

	// lifecycle transitions
	Accept(ctx context.Context, requestID, responderID string) (*models.Request, error)
	Reject(ctx context.Context, requestID string) (*models.Request, error)
	Cancel(ctx context.Context, requestID string) (*models.Request, error)
	ShareLocation(ctx context.Context, requestID string, location models.Location) (*models.Request, error)
	Verify(ctx context.Context, requestID, code string) (*models.TransactionRecord, error)

	// history and session
	ListTransactions(ctx context.Context) ([]models.TransactionRecord, error)
	Reset(ctx context.Context) error
}
