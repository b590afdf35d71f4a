package repository

import (
	"context"
	"sync"

	apperrors "github.com/liquex/liquex/internal/pkg/errors"
	"github.com/liquex/liquex/internal/pkg/models"
)

// MemoryRequestRepo is the session-scoped in-memory request store. The session
// today has a single logical writer, but the store is guarded so a networked
// deployment can serialize mutations per request without changes here.
type MemoryRequestRepo struct {
	mu       sync.RWMutex
	requests map[string]*models.Request
	order    []string
}

// NewMemoryRequestRepo creates an empty request store
func NewMemoryRequestRepo() *MemoryRequestRepo {
	return &MemoryRequestRepo{
		requests: make(map[string]*models.Request),
	}
}

// Add inserts a request, failing when the id is already present
func (r *MemoryRequestRepo) Add(ctx context.Context, request *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := request.ID.String()
	if _, exists := r.requests[id]; exists {
		return apperrors.ErrDuplicateRequestID
	}

	stored := *request
	r.requests[id] = &stored
	r.order = append(r.order, id)
	return nil
}

// Get retrieves a request by id
func (r *MemoryRequestRepo) Get(ctx context.Context, id string) (*models.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, exists := r.requests[id]
	if !exists {
		return nil, apperrors.ErrRequestNotFound
	}

	copied := *request
	return &copied, nil
}

// Update replaces the stored request with the same id
func (r *MemoryRequestRepo) Update(ctx context.Context, request *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := request.ID.String()
	if _, exists := r.requests[id]; !exists {
		return apperrors.ErrRequestNotFound
	}

	stored := *request
	r.requests[id] = &stored
	return nil
}

// Remove deletes a request by id, failing when absent
func (r *MemoryRequestRepo) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.requests[id]; !exists {
		return apperrors.ErrRequestNotFound
	}

	delete(r.requests, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// List returns a snapshot of all requests in insertion order
func (r *MemoryRequestRepo) List(ctx context.Context) ([]models.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Request, 0, len(r.order))
	for _, id := range r.order {
		snapshot = append(snapshot, *r.requests[id])
	}
	return snapshot, nil
}

// ListExcluding returns all requests not authored by userID, in insertion
// order. Requesters never see their own requests in the discovery feed.
func (r *MemoryRequestRepo) ListExcluding(ctx context.Context, userID string) ([]models.Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]models.Request, 0, len(r.order))
	for _, id := range r.order {
		if r.requests[id].RequesterID == userID {
			continue
		}
		snapshot = append(snapshot, *r.requests[id])
	}
	return snapshot, nil
}

// Reset clears the store. Called on logout; there is no cross-session
// persistence of active requests.
func (r *MemoryRequestRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.requests = make(map[string]*models.Request)
	r.order = nil
	return nil
}
