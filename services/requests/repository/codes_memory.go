package repository

import (
	"context"
	"sync"
	"time"
)

type storedCode struct {
	code      string
	expiresAt time.Time
}

// MemoryCodeStore holds pending verification codes in memory
type MemoryCodeStore struct {
	mu    sync.Mutex
	codes map[string]storedCode
}

// NewMemoryCodeStore creates an empty code store
func NewMemoryCodeStore() *MemoryCodeStore {
	return &MemoryCodeStore{codes: make(map[string]storedCode)}
}

// Put stores a code for a request id with the given time to live
func (s *MemoryCodeStore) Put(ctx context.Context, requestID, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.codes[requestID] = storedCode{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

// Get returns the pending code, or "" when none is stored or it expired
func (s *MemoryCodeStore) Get(ctx context.Context, requestID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, exists := s.codes[requestID]
	if !exists {
		return "", nil
	}
	if time.Now().After(stored.expiresAt) {
		delete(s.codes, requestID)
		return "", nil
	}
	return stored.code, nil
}

// Delete removes the pending code for a request id
func (s *MemoryCodeStore) Delete(ctx context.Context, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.codes, requestID)
	return nil
}
