package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/benefit-cards/internal/api/shared"
	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/service"
)

const unexpectedErrorMessage = "An unexpected error occurred"

// kindStatus maps service violation kinds to HTTP status codes.
var kindStatus = map[service.Kind]int{
	service.KindNotFound:   http.StatusNotFound,
	service.KindConflict:   http.StatusConflict,
	service.KindForbidden:  http.StatusForbidden,
	service.KindBadRequest: http.StatusBadRequest,
}

// MapErrorToStatusCode maps an error to an HTTP status code without leaking
// internal error types to clients.
func MapErrorToStatusCode(err error) int {
	if kind, ok := service.KindOf(err); ok {
		if status, known := kindStatus[kind]; known {
			return status
		}
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) || errors.Is(err, domain.ErrValidation) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// GetSafeErrorMessage returns the message that may be shown to clients for err.
// Only service violations and validation errors carry their own text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return unexpectedErrorMessage
	}

	var svcErr *service.Error
	if errors.As(err, &svcErr) {
		return svcErr.Message
	}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	}

	return unexpectedErrorMessage
}

// HandleAPIError writes the error response for err. fallbackMessage replaces
// the generic message of internal errors when it is not empty.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// SanitizeValidationError turns validator output into a short client message
// naming the first failing field.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}

	fe := fieldErrs[0]
	return fmt.Sprintf("Invalid %s: %s", jsonFieldName(fe.Field()), getValidationTagMessage(fe.Tag(), fe.Param()))
}

// jsonFieldName converts a Go field name such as EmployeeID to employee_id.
func jsonFieldName(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		upper := r >= 'A' && r <= 'Z'
		if upper && i > 0 {
			prevLower := runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if prevLower || nextLower {
				b.WriteByte('_')
			}
		}
		if upper {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag, param string) string {
	switch tag {
	case "required":
		return "required field"
	case "len":
		return "must have " + param + " characters"
	case "numeric":
		return "must contain only digits"
	case "gt":
		return "must be greater than " + param
	case "oneof":
		return "must be one of " + strings.ReplaceAll(param, " ", ", ")
	default:
		return "validation failed"
	}
}
