package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	apperrors "github.com/liquex/liquex/internal/pkg/errors"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRequest(requesterID string) *models.Request {
	return &models.Request{
		ID:          uuid.New(),
		Amount:      25.50,
		Kind:        models.KindMoney,
		Urgency:     models.UrgencyMedium,
		Category:    "food",
		RequesterID: requesterID,
		Status:      models.RequestStatusOpen,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestMemoryRequestRepo_AddAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	request := newTestRequest("alice")

	require.NoError(t, repo.Add(ctx, request))

	got, err := repo.Get(ctx, request.ID.String())
	require.NoError(t, err)
	assert.Equal(t, request.ID, got.ID)
	assert.Equal(t, models.RequestStatusOpen, got.Status)
}

func TestMemoryRequestRepo_AddDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	request := newTestRequest("alice")

	require.NoError(t, repo.Add(ctx, request))
	assert.ErrorIs(t, repo.Add(ctx, request), apperrors.ErrDuplicateRequestID)
}

func TestMemoryRequestRepo_GetMissing(t *testing.T) {
	repo := NewMemoryRequestRepo()

	_, err := repo.Get(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestMemoryRequestRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	request := newTestRequest("alice")
	require.NoError(t, repo.Add(ctx, request))

	got, err := repo.Get(ctx, request.ID.String())
	require.NoError(t, err)
	got.Status = models.RequestStatusAccepted

	stored, err := repo.Get(ctx, request.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusOpen, stored.Status)
}

func TestMemoryRequestRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	request := newTestRequest("alice")
	require.NoError(t, repo.Add(ctx, request))

	request.Status = models.RequestStatusAccepted
	request.ResponderID = "bob"
	require.NoError(t, repo.Update(ctx, request))

	got, err := repo.Get(ctx, request.ID.String())
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, got.Status)
	assert.Equal(t, "bob", got.ResponderID)
}

func TestMemoryRequestRepo_UpdateMissing(t *testing.T) {
	repo := NewMemoryRequestRepo()

	err := repo.Update(context.Background(), newTestRequest("alice"))
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestMemoryRequestRepo_Remove(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	request := newTestRequest("alice")
	require.NoError(t, repo.Add(ctx, request))

	require.NoError(t, repo.Remove(ctx, request.ID.String()))

	_, err := repo.Get(ctx, request.ID.String())
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
	assert.ErrorIs(t, repo.Remove(ctx, request.ID.String()), apperrors.ErrRequestNotFound)
}

func TestMemoryRequestRepo_ListInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()

	first := newTestRequest("alice")
	second := newTestRequest("bob")
	third := newTestRequest("carol")
	for _, request := range []*models.Request{first, second, third} {
		require.NoError(t, repo.Add(ctx, request))
	}
	require.NoError(t, repo.Remove(ctx, second.ID.String()))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, first.ID, listed[0].ID)
	assert.Equal(t, third.ID, listed[1].ID)
}

func TestMemoryRequestRepo_ListExcluding(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()

	mine := newTestRequest("alice")
	theirs := newTestRequest("bob")
	require.NoError(t, repo.Add(ctx, mine))
	require.NoError(t, repo.Add(ctx, theirs))

	listed, err := repo.ListExcluding(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, theirs.ID, listed[0].ID)
}

func TestMemoryRequestRepo_Reset(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRequestRepo()
	require.NoError(t, repo.Add(ctx, newTestRequest("alice")))

	require.NoError(t, repo.Reset(ctx))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestMemoryTransactionRepo_NewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryTransactionRepo()

	older := &models.TransactionRecord{ID: "TXN-1", Amount: 10, Status: models.TransactionStatusCompleted, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &models.TransactionRecord{ID: "TXN-2", Amount: 20, Status: models.TransactionStatusCancelled, CreatedAt: time.Now()}
	require.NoError(t, repo.Append(ctx, older))
	require.NoError(t, repo.Append(ctx, newer))

	listed, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "TXN-2", listed[0].ID)
	assert.Equal(t, "TXN-1", listed[1].ID)
}

func TestMemoryCodeStore_PutGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCodeStore()

	require.NoError(t, store.Put(ctx, "req-1", "123456", time.Minute))

	code, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)

	require.NoError(t, store.Delete(ctx, "req-1"))
	code, err = store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Empty(t, code)
}

func TestMemoryCodeStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryCodeStore()

	require.NoError(t, store.Put(ctx, "req-1", "123456", -time.Second))

	code, err := store.Get(ctx, "req-1")
	require.NoError(t, err)
	assert.Empty(t, code)
}
