package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsMapHTTPCodes(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		code Code
		http int
	}{
		{"validation", Validation("bad input"), CodeValidation, http.StatusBadRequest},
		{"unauthenticated", Unauthenticated("no"), CodeUnauthenticated, http.StatusUnauthorized},
		{"forbidden", Forbidden("no"), CodeForbidden, http.StatusForbidden},
		{"not found", NotFound("gone"), CodeNotFound, http.StatusNotFound},
		{"conflict", Conflict("dup"), CodeConflict, http.StatusConflict},
		{"role not found", RoleNotFound("dangling"), CodeRoleNotFound, http.StatusInternalServerError},
		{"storage", Storage(errors.New("io")), CodeStorage, http.StatusInternalServerError},
		{"internal", Internal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.http, tt.err.HTTPCode)
		})
	}
}

func TestFrom(t *testing.T) {
	appErr := NotFound("missing")
	assert.Same(t, appErr, From(appErr))

	wrapped := fmt.Errorf("outer: %w", appErr)
	assert.Same(t, appErr, From(wrapped))

	unknown := From(errors.New("raw db error"))
	assert.Equal(t, CodeInternal, unknown.Code)
	// The raw text stays in the wrapped cause, not the client message.
	assert.Equal(t, "internal server error", unknown.Message)
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	err := Storage(cause)
	assert.ErrorIs(t, err, cause)
}
