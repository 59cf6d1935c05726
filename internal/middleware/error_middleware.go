package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hostelops/dormdesk/internal/app/models/dto"
	"github.com/hostelops/dormdesk/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto HTTP statuses and emits the
// standard {message} body. Anything unrecognized becomes a 500 carrying the
// error's own message.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrComplaintNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Complaint not found."))
	case errors.Is(err, apperrors.ErrResourceNotFound), errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(messageOf(err, "Resource not found.")))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(messageOf(err, "Permission denied.")))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Invalid email or password."))
	case errors.Is(err, apperrors.ErrBadRequest), errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(messageOf(err, "Validation failed.")))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse(messageOf(err, "A record with this value already exists.")))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
	}
}

// messageOf prefers the CustomError message over the fallback
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
