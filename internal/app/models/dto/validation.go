package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// HandleValidationError converts a gin binding error into the standard
// {message} error response. The first failed field wins.
func HandleValidationError(err error) *ErrorResponse {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return NewErrorResponse(formatValidationError(validationErrs[0]))
	}
	return NewErrorResponse("Invalid request payload.")
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	field := strings.ToLower(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long.", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long.", field, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address.", field)
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
