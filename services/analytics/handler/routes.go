package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/middleware"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/services/analytics/handler/http"
)

// Handler coordinates the HTTP handlers for the analytics service
type Handler struct {
	analyticsHandler *http.AnalyticsHandler
	cfg              *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(analyticsHandler *http.AnalyticsHandler, cfg *models.Config) *Handler {
	return &Handler{
		analyticsHandler: analyticsHandler,
		cfg:              cfg,
	}
}

// RegisterRoutes registers the analytics routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuth(h.cfg.JWT.Secret))
	protected.GET("/analytics/requests", h.analyticsHandler.RequestAnalytics)
}
