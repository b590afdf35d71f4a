package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	apperrors "github.com/liquex/liquex/internal/pkg/errors"
	"github.com/liquex/liquex/internal/pkg/logger"
	"github.com/liquex/liquex/internal/utils"
)

// writeError maps usecase errors onto HTTP responses. Unrecognized errors
// are logged and reported as 500 without leaking internals.
func writeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, apperrors.ErrRequestNotFound):
		return utils.NotFoundResponse(c, "request not found")
	case errors.Is(err, apperrors.ErrDuplicateRequestID):
		return utils.ConflictResponse(c, "request id already exists")
	case apperrors.IsValidation(err):
		return utils.BadRequestResponse(c, err.Error())
	case apperrors.IsInvalidState(err):
		return utils.ConflictResponse(c, err.Error())
	case apperrors.IsVerification(err):
		return utils.UnprocessableEntityResponse(c, err.Error())
	default:
		logger.Error("Unhandled request error",
			logger.String("path", c.Path()),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}
