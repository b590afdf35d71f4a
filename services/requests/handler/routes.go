package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/middleware"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/services/requests/handler/http"
)

// Handler coordinates the HTTP handlers for the requests service
type Handler struct {
	requestHandler *http.RequestHandler
	sessionHandler *http.SessionHandler
	cfg            *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	requestHandler *http.RequestHandler,
	sessionHandler *http.SessionHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		requestHandler: requestHandler,
		sessionHandler: sessionHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the session and request lifecycle routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	// Public routes (no authentication required)
	e.POST("/sessions", h.sessionHandler.Create)

	// Protected routes
	protected := e.Group("", middleware.JWTAuth(h.cfg.JWT.Secret))
	protected.POST("/sessions/logout", h.sessionHandler.Logout)

	requestGroup := protected.Group("/requests")
	requestGroup.POST("", h.requestHandler.Raise)
	requestGroup.GET("/feed", h.requestHandler.Feed)
	requestGroup.GET("/:id", h.requestHandler.Get)
	requestGroup.POST("/:id/accept", h.requestHandler.Accept)
	requestGroup.POST("/:id/reject", h.requestHandler.Reject)
	requestGroup.POST("/:id/cancel", h.requestHandler.Cancel)
	requestGroup.POST("/:id/location", h.requestHandler.ShareLocation)
	requestGroup.POST("/:id/verify", h.requestHandler.Verify)

	protected.GET("/transactions", h.requestHandler.Transactions)
}
