package response

import (
	"log"
	"net/http"

	"github.com/SnehSutariya72/Vehicle-Vault-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Response represents a standard API response format
type Response struct {
	Status     string      `json:"status"`      // "success" or "error"
	StatusCode int         `json:"status_code"` // HTTP status code
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Success returns a standard success response wrapping the data
func Success(statusCode int, data interface{}) Response {
	return Response{
		Status:     "success",
		StatusCode: statusCode,
		Data:       data,
	}
}

// Error returns a standard error response wrapping the error message
func Error(statusCode int, err string) Response {
	return Response{
		Status:     "error",
		StatusCode: statusCode,
		Error:      err,
	}
}

// FromError writes the envelope for a service error. 5xx causes are logged
// with the operation name; the client only ever sees the safe message.
func FromError(c *gin.Context, op string, err error) {
	appErr := apperrors.From(err)
	if appErr.HTTPCode >= http.StatusInternalServerError {
		log.Printf("%s: %v", op, appErr)
	}
	c.JSON(appErr.HTTPCode, Error(appErr.HTTPCode, appErr.Message))
}

// AbortFromError is FromError for middleware chains.
func AbortFromError(c *gin.Context, op string, err error) {
	appErr := apperrors.From(err)
	if appErr.HTTPCode >= http.StatusInternalServerError {
		log.Printf("%s: %v", op, appErr)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, Error(appErr.HTTPCode, appErr.Message))
}
