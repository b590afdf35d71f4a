package usecase

import (
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/services/requests"
)

// RequestUC implements the request lifecycle usecase
type RequestUC struct {
	requestRepo     requests.RequestRepo
	transactionRepo requests.TransactionRepo
	codes           requests.CodeStore
	requestGW       requests.RequestGW
	cfg             *models.Config
}

// NewRequestUC creates a new request usecase
func NewRequestUC(
	requestRepo requests.RequestRepo,
	transactionRepo requests.TransactionRepo,
	codes requests.CodeStore,
	requestGW requests.RequestGW,
	cfg *models.Config,
) *RequestUC {
	return &RequestUC{
		requestRepo:     requestRepo,
		transactionRepo: transactionRepo,
		codes:           codes,
		requestGW:       requestGW,
		cfg:             cfg,
	}
}
