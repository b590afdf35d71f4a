package requests

import (
	"context"

	"github.com/liquex/liquex/internal/pkg/models"
)

// RequestGW publishes request lifecycle events for downstream consumers
type RequestGW interface {
	PublishRequestRaised(ctx context.Context, request *models.Request) error
	PublishRequestAccepted(ctx context.Context, request *models.Request) error
	PublishLocationShared(ctx context.Context, share *models.LocationShare) error
	PublishTransactionCompleted(ctx context.Context, record *models.TransactionRecord) error
}
