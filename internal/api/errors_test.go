package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/benefit-cards/internal/api/shared"
	"github.com/phrazzld/benefit-cards/internal/domain"
	"github.com/phrazzld/benefit-cards/internal/service"
	"github.com/phrazzld/benefit-cards/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", service.ErrCardNotFound, http.StatusNotFound},
		{"conflict", service.ErrDuplicateCardType, http.StatusConflict},
		{"forbidden", service.ErrCardExpired, http.StatusForbidden},
		{"bad request", service.ErrCardAlreadyBlocked, http.StatusBadRequest},
		{"wrapped violation", fmt.Errorf("activate: %w", service.ErrWrongPassword), http.StatusForbidden},
		{"validation error", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), http.StatusBadRequest},
		{"validation sentinel", domain.ErrValidation, http.StatusBadRequest},
		{"store error", store.ErrNotFound, http.StatusInternalServerError},
		{"service failure", service.NewCardServiceError("get_balance", "failed to list payments", errors.New("boom")), http.StatusInternalServerError},
		{"unknown kind", &service.Error{Kind: "teapot", Message: "short and stout"}, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, unexpectedErrorMessage},
		{"violation", service.ErrSecurityCodeInvalid, "Security code does not match"},
		{"wrapped violation", fmt.Errorf("x: %w", service.ErrCardBlocked), "Card is blocked"},
		{"validation error", domain.NewValidationError("id", "has invalid format", domain.ErrInvalidID), "Invalid id: has invalid format"},
		{"internal error", errors.New("pq: relation \"cards\" does not exist"), unexpectedErrorMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestSanitizeValidationError(t *testing.T) {
	tests := []struct {
		name string
		req  any
		want string
	}{
		{"required", &CreateCardRequest{Type: "food"}, "Invalid employee_id: required field"},
		{"gt", &CreateCardRequest{EmployeeID: -1, Type: "food"}, "Invalid employee_id: must be greater than 0"},
		{"oneof", &struct {
			Channel string `validate:"oneof=web mobile"`
		}{Channel: "fax"}, "Invalid channel: must be one of web, mobile"},
		{"len", &ActivateCardRequest{SecurityCode: "1234", Password: "1234"}, "Invalid security_code: must have 3 characters"},
		{"numeric", &ActivateCardRequest{SecurityCode: "123", Password: "12a4"}, "Invalid password: must contain only digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := shared.ValidateRequest(tt.req)
			require.Error(t, err)
			assert.Equal(t, tt.want, SanitizeValidationError(err))
		})
	}

	t.Run("non validator error", func(t *testing.T) {
		assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
	})
}

func TestJSONFieldName(t *testing.T) {
	tests := map[string]string{
		"EmployeeID":   "employee_id",
		"SecurityCode": "security_code",
		"Password":     "password",
		"ID":           "id",
		"Type":         "type",
	}
	for in, want := range tests {
		assert.Equal(t, want, jsonFieldName(in), in)
	}
}
