package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/liquex/liquex/internal/pkg/models"
)

// MemoryTransactionRepo keeps transaction records in memory for the session
type MemoryTransactionRepo struct {
	mu      sync.RWMutex
	records []models.TransactionRecord
}

// NewMemoryTransactionRepo creates an empty transaction archive
func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{}
}

// Append stores a new record. Records are immutable after creation.
func (r *MemoryTransactionRepo) Append(ctx context.Context, record *models.TransactionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, *record)
	return nil
}

// List returns all records ordered by creation time descending
func (r *MemoryTransactionRepo) List(ctx context.Context) ([]models.TransactionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.TransactionRecord, len(r.records))
	copy(snapshot, r.records)

	sort.SliceStable(snapshot, func(i, j int) bool {
		return snapshot[i].CreatedAt.After(snapshot[j].CreatedAt)
	})
	return snapshot, nil
}
