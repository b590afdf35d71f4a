package health

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Status represents the health check response payload
type Status struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterHealthEndpoints registers liveness and readiness endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	handler := func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:    "ok",
			Service:   serviceName,
			Timestamp: time.Now(),
		})
	}

	e.GET("/health", handler)
	e.GET("/health/ready", handler)
}
