package requests

import (
	"context"
	"time"

	"github.com/liquex/liquex/internal/pkg/models"
)

// RequestRepo is the authoritative session-scoped store of active requests
type RequestRepo interface {
	Add(ctx context.Context, request *models.Request) error
	Get(ctx context.Context, id string) (*models.Request, error)
	Update(ctx context.Context, request *models.Request) error
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Request, error)
	ListExcluding(ctx context.Context, userID string) ([]models.Request, error)
	Reset(ctx context.Context) error
}

// TransactionRepo archives transaction records of finished requests
type TransactionRepo interface {
	Append(ctx context.Context, record *models.TransactionRecord) error
	List(ctx context.Context) ([]models.TransactionRecord, error)
}

// CodeStore holds pending verification codes keyed by request id
type CodeStore interface {
	Put(ctx context.Context, requestID, code string, ttl time.Duration) error
	// Get returns the pending code, or "" when none is stored or it expired
	Get(ctx context.Context, requestID string) (string, error)
	Delete(ctx context.Context, requestID string) error
}
