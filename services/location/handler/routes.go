package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/middleware"
	"github.com/liquex/liquex/internal/pkg/models"
	"github.com/liquex/liquex/services/location/handler/http"
)

// Handler coordinates the HTTP handlers for the location service
type Handler struct {
	meetupHandler *http.MeetupHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(meetupHandler *http.MeetupHandler, cfg *models.Config) *Handler {
	return &Handler{
		meetupHandler: meetupHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers the meetup spot routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", middleware.JWTAuth(h.cfg.JWT.Secret))
	protected.GET("/meetup-spots", h.meetupHandler.MeetupSpots)
}
