package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/utils"
	"github.com/liquex/liquex/services/analytics"
)

// AnalyticsHandler exposes request analytics over HTTP
type AnalyticsHandler struct {
	analyticsUC analytics.AnalyticsUC
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUC analytics.AnalyticsUC) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUC: analyticsUC}
}

// RequestAnalytics handles GET /analytics/requests
func (h *AnalyticsHandler) RequestAnalytics(c echo.Context) error {
	snapshot, err := h.analyticsUC.RequestAnalytics(c.Request().Context())
	if err != nil {
		logger.Error("Failed to aggregate request analytics", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}
	return utils.SuccessResponse(c, http.StatusOK, "Request analytics", snapshot)
}
