package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/liquex/liquex/internal/pkg/jwt"
	"github.com/liquex/liquex/internal/utils"
)

// ContextKeyUserID is the echo context key the session middleware sets
const ContextKeyUserID = "user_id"

// JWTAuth validates the bearer token and stores the session user id in the
// request context
func JWTAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return utils.UnauthorizedResponse(c, "missing authorization header")
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return utils.UnauthorizedResponse(c, "invalid authorization header format")
			}

			claims, err := jwt.ValidateToken(token, secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "invalid or expired token")
			}

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				return utils.UnauthorizedResponse(c, "token missing user identity")
			}

			c.Set(ContextKeyUserID, userID)
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuth
func UserIDFromContext(c echo.Context) string {
	userID, _ := c.Get(ContextKeyUserID).(string)
	return userID
}
