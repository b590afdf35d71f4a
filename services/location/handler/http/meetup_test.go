package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLocationUC struct {
	listed bool
	ranked bool
}

func (s *stubLocationUC) ListMeetupSpots(ctx context.Context) ([]models.MeetupSpot, error) {
	s.listed = true
	return []models.MeetupSpot{}, nil
}

func (s *stubLocationUC) RankedMeetupSpots(ctx context.Context, origin *models.Location) ([]models.RankedMeetupSpot, error) {
	s.ranked = true
	return []models.RankedMeetupSpot{}, nil
}

func performMeetupRequest(h *MeetupHandler, target string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return rec, h.MeetupSpots(e.NewContext(req, rec))
}

func TestMeetupSpots_WithoutCoordinates(t *testing.T) {
	uc := &stubLocationUC{}
	rec, err := performMeetupRequest(NewMeetupHandler(uc), "/meetup-spots")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.listed)
	assert.False(t, uc.ranked)
}

func TestMeetupSpots_WithCoordinates(t *testing.T) {
	uc := &stubLocationUC{}
	rec, err := performMeetupRequest(NewMeetupHandler(uc), "/meetup-spots?lat=40.7128&lng=-74.0060")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, uc.ranked)
}

func TestMeetupSpots_HalfSpecifiedCoordinates(t *testing.T) {
	for _, target := range []string{"/meetup-spots?lat=40.7128", "/meetup-spots?lng=-74.0060"} {
		uc := &stubLocationUC{}
		rec, err := performMeetupRequest(NewMeetupHandler(uc), target)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "target %s", target)
		assert.False(t, uc.listed)
		assert.False(t, uc.ranked)
	}
}

func TestMeetupSpots_BadCoordinates(t *testing.T) {
	rec, err := performMeetupRequest(NewMeetupHandler(&stubLocationUC{}), "/meetup-spots?lat=abc&lng=1")
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
