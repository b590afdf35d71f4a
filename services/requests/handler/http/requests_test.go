package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	apperrors "github.com/liquex/liquex/internal/pkg/errors"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestUC struct {
	raiseFn  func(ctx context.Context, requesterID string, input *models.RaiseRequestInput) (*models.Request, error)
	feedFn   func(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error)
	getFn    func(ctx context.Context, requestID string) (*models.Request, error)
	acceptFn func(ctx context.Context, requestID, responderID string) (*models.Request, error)
	verifyFn func(ctx context.Context, requestID, code string) (*models.TransactionRecord, error)
}

func (s *stubRequestUC) Raise(ctx context.Context, requesterID string, input *models.RaiseRequestInput) (*models.Request, error) {
	return s.raiseFn(ctx, requesterID, input)
}

func (s *stubRequestUC) Feed(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error) {
	return s.feedFn(ctx, observerID, origin, maxDistanceMeters)
}

func (s *stubRequestUC) Get(ctx context.Context, requestID string) (*models.Request, error) {
	return s.getFn(ctx, requestID)
}

func (s *stubRequestUC) Accept(ctx context.Context, requestID, responderID string) (*models.Request, error) {
	return s.acceptFn(ctx, requestID, responderID)
}

func (s *stubRequestUC) Reject(ctx context.Context, requestID string) (*models.Request, error) {
	return nil, nil
}

func (s *stubRequestUC) Cancel(ctx context.Context, requestID string) (*models.Request, error) {
	return nil, nil
}

func (s *stubRequestUC) ShareLocation(ctx context.Context, requestID string, location models.Location) (*models.Request, error) {
	return nil, nil
}

func (s *stubRequestUC) Verify(ctx context.Context, requestID, code string) (*models.TransactionRecord, error) {
	return s.verifyFn(ctx, requestID, code)
}

func (s *stubRequestUC) ListTransactions(ctx context.Context) ([]models.TransactionRecord, error) {
	return nil, nil
}

func (s *stubRequestUC) Reset(ctx context.Context) error {
	return nil
}

func testConfig() *models.Config {
	return &models.Config{
		Match: models.MatchConfig{MaxDistanceMeters: 700, GeohashPrecision: 7},
	}
}

func performRequest(h echo.HandlerFunc, method, target, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "alice")
	return rec, h(c)
}

func TestRaise_ValidationMapsTo400(t *testing.T) {
	uc := &stubRequestUC{
		raiseFn: func(ctx context.Context, requesterID string, input *models.RaiseRequestInput) (*models.Request, error) {
			return nil, apperrors.NewValidationError("amount", "required")
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Raise, http.MethodPost, "/requests", `{"kind":"money"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAccept_InvalidStateMapsTo409(t *testing.T) {
	uc := &stubRequestUC{
		acceptFn: func(ctx context.Context, requestID, responderID string) (*models.Request, error) {
			assert.Equal(t, "alice", responderID)
			return nil, apperrors.NewInvalidStateError(requestID, "ACCEPTED", "accept")
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Accept, http.MethodPost, "/requests/req-1/accept", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestVerify_VerificationMapsTo422(t *testing.T) {
	uc := &stubRequestUC{
		verifyFn: func(ctx context.Context, requestID, code string) (*models.TransactionRecord, error) {
			assert.Equal(t, "111111", code)
			return nil, apperrors.NewVerificationError("code does not match")
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Verify, http.MethodPost, "/requests/req-1/verify", `{"code":"111111"}`)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGet_NotFoundMapsTo404(t *testing.T) {
	uc := &stubRequestUC{
		getFn: func(ctx context.Context, requestID string) (*models.Request, error) {
			return nil, apperrors.ErrRequestNotFound
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Get, http.MethodGet, "/requests/no-such-id", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFeed_DefaultsMaxDistance(t *testing.T) {
	var gotMax float64
	var gotOrigin *models.Location
	uc := &stubRequestUC{
		feedFn: func(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error) {
			gotMax = maxDistanceMeters
			gotOrigin = origin
			return []models.NearbyRequest{}, nil
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Feed, http.MethodGet, "/requests/feed?lat=40.7128&lng=-74.0060", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 700.0, gotMax)
	require.NotNil(t, gotOrigin)
	assert.InDelta(t, 40.7128, gotOrigin.Latitude, 0.00001)
}

func TestFeed_ExplicitZeroMaxDistance(t *testing.T) {
	var gotMax float64
	uc := &stubRequestUC{
		feedFn: func(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error) {
			gotMax = maxDistanceMeters
			return []models.NearbyRequest{}, nil
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Feed, http.MethodGet, "/requests/feed?lat=1&lng=1&max_distance_meters=0", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, gotMax)
}

func TestFeed_MissingCoordinatesDegrades(t *testing.T) {
	var gotOrigin *models.Location = &models.Location{}
	uc := &stubRequestUC{
		feedFn: func(ctx context.Context, observerID string, origin *models.Location, maxDistanceMeters float64) ([]models.NearbyRequest, error) {
			gotOrigin = origin
			return []models.NearbyRequest{}, nil
		},
	}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Feed, http.MethodGet, "/requests/feed", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, gotOrigin)
}

func TestFeed_BadCoordinates(t *testing.T) {
	uc := &stubRequestUC{}
	h := NewRequestHandler(uc, testConfig())

	rec, err := performRequest(h.Feed, http.MethodGet, "/requests/feed?lat=abc&lng=1", "")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFeed_HalfSpecifiedCoordinates(t *testing.T) {
	uc := &stubRequestUC{}
	h := NewRequestHandler(uc, testConfig())

	for _, target := range []string{"/requests/feed?lat=40.7128", "/requests/feed?lng=-74.0060"} {
		rec, err := performRequest(h.Feed, http.MethodGet, target, "")
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
	}
}
