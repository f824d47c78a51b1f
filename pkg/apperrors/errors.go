package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the failure class independently of the HTTP layer.
type Code string

const (
	CodeValidation      Code = "VALIDATION_FAILED"
	CodeUnauthenticated Code = "UNAUTHENTICATED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConflict        Code = "CONFLICT"
	CodeRoleNotFound    Code = "ROLE_NOT_FOUND"
	CodeStorage         Code = "STORAGE_ERROR"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// AppError carries a failure class, a safe client-facing message and the
// underlying cause. Handlers map HTTPCode onto the response; the wrapped
// error is for logs only and never leaves the process.
type AppError struct {
	Code     Code
	Message  string
	HTTPCode int
	Err      error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithErr attaches the underlying cause for logging.
func (e *AppError) WithErr(err error) *AppError {
	return &AppError{Code: e.Code, Message: e.Message, HTTPCode: e.HTTPCode, Err: err}
}

func New(code Code, message string, httpCode int) *AppError {
	return &AppError{Code: code, Message: message, HTTPCode: httpCode}
}

func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

func Unauthenticated(message string) *AppError {
	return New(CodeUnauthenticated, message, http.StatusUnauthorized)
}

func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// RoleNotFound marks a dangling role reference. It is a server-side data
// problem, not something the caller did wrong, so it maps to 500.
func RoleNotFound(message string) *AppError {
	return New(CodeRoleNotFound, message, http.StatusInternalServerError)
}

func Storage(err error) *AppError {
	return &AppError{
		Code:     CodeStorage,
		Message:  "storage operation failed",
		HTTPCode: http.StatusInternalServerError,
		Err:      err,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:     CodeInternal,
		Message:  "internal server error",
		HTTPCode: http.StatusInternalServerError,
		Err:      err,
	}
}

// From extracts an *AppError, wrapping unknown errors as Internal so the
// raw text never reaches the client.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
