package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/jwt"
	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/internal/utils"
	"github.com/liquex/liquex/services/requests"
)

// SessionHandler issues demo session tokens and handles logout
type SessionHandler struct {
	requestUC requests.RequestUC
	cfg       *models.Config
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(requestUC requests.RequestUC, cfg *models.Config) *SessionHandler {
	return &SessionHandler{
		requestUC: requestUC,
		cfg:       cfg,
	}
}

// Create handles POST /sessions. Any non-empty user id gets a session; this
// is a demo surface, not an identity system.
func (h *SessionHandler) Create(c echo.Context) error {
	var body models.SessionRequest
	if err := c.Bind(&body); err != nil {
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if body.UserID == "" {
		return utils.BadRequestResponse(c, "user_id is required")
	}

	token, expiresAt, err := jwt.GenerateToken(body.UserID, h.cfg.JWT)
	if err != nil {
		logger.Error("Failed to generate session token", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Session created", models.AuthResponse{
		Token:     token,
		UserID:    body.UserID,
		ExpiresAt: expiresAt,
	})
}

// Logout handles POST /sessions/logout. Ending the session clears the active
// request store, matching the single-session demo lifecycle.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.requestUC.Reset(c.Request().Context()); err != nil {
		return writeError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Session ended", nil)
}
