package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body for single-message failures (401 and 500).
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationResponse is the body for validation failures (422), carrying a
// list of human-readable messages.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	c.JSON(http.StatusUnauthorized, ErrorResponse{Error: message})
}

// ValidationFailed sends a 422 response with the given messages
func ValidationFailed(c *gin.Context, messages ...string) {
	c.JSON(http.StatusUnprocessableEntity, ValidationResponse{Errors: messages})
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: message})
}
