package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rupp/ams-api/internal/app/models/dto"
	"github.com/rupp/ams-api/internal/pkg/apperrors"
	"github.com/rupp/ams-api/internal/pkg/logger"
)

// HandleAPIError maps service errors onto HTTP status codes and the
// uniform response envelope. Not-found is 404, denial is 403, bad
// credentials and token problems are 401, conflicts and validation
// failures are 400, everything unrecognized is 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrResourceNotFound,
		apperrors.ErrUserNotFound,
		apperrors.ErrProfileNotFound,
		apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound,
		apperrors.ErrClassNotFound,
		apperrors.ErrSubjectNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("invalid credentials"))

	case apperrors.Is(err, apperrors.ErrTokenExpired,
		apperrors.ErrTokenInvalid,
		apperrors.ErrTokenNotFound):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrConflict,
		apperrors.ErrEmailAlreadyExists,
		apperrors.ErrProfileAlreadyExists,
		apperrors.ErrCardIDAlreadyExists,
		apperrors.ErrStudentNoAlreadyExists,
		apperrors.ErrStudentCardAlreadyExists,
		apperrors.ErrEmployeeCodeAlreadyExists,
		apperrors.ErrClassNameAlreadyExists,
		apperrors.ErrSubjectNameAlreadyExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	case apperrors.Is(err, apperrors.ErrValidationFailed,
		apperrors.ErrBadRequest,
		apperrors.ErrUnknownRole,
		apperrors.ErrInvalidTeacherStatus):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))

	// A write that matched no rows after existence was confirmed is an
	// internal failure, not a 404
	case apperrors.Is(err, apperrors.ErrUpdateFailed):
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Update affected no rows")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal server error"))
	}
}
