package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/jwt"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func invokeJWTAuth(t *testing.T, authorization string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/requests/feed", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestJWTAuth_ValidToken(t *testing.T) {
	token, _, err := jwt.GenerateToken("alice", models.JWTConfig{Secret: testSecret, Expiration: 5, Issuer: "liquex"})
	require.NoError(t, err)

	rec, reached := invokeJWTAuth(t, "Bearer "+token)
	assert.True(t, reached)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, reached := invokeJWTAuth(t, "")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_NotBearer(t *testing.T) {
	rec, reached := invokeJWTAuth(t, "Basic abcdef")
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, _, err := jwt.GenerateToken("alice", models.JWTConfig{Secret: "other", Expiration: 5, Issuer: "liquex"})
	require.NoError(t, err)

	rec, reached := invokeJWTAuth(t, "Bearer "+token)
	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserIDFromContext(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Empty(t, UserIDFromContext(c))

	c.Set(ContextKeyUserID, "alice")
	assert.Equal(t, "alice", UserIDFromContext(c))
}
