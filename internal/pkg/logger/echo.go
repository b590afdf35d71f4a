package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// ZapEchoMiddleware logs every HTTP request with method, path, status and
// latency. Server errors log at error level, everything else at info.
func ZapEchoMiddleware(log *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			requestID, _ := c.Get("request_id").(string)
			fields := []Field{
				String("method", c.Request().Method),
				String("path", c.Request().URL.Path),
				Int("status", c.Response().Status),
				Duration("latency", time.Since(start)),
				String("request_id", requestID),
			}
			if err != nil {
				fields = append(fields, ErrorField(err))
			}

			if c.Response().Status >= 500 {
				log.Logger.Error("HTTP request", fields...)
			} else {
				log.Logger.Info("HTTP request", fields...)
			}
			return err
		}
	}
}
