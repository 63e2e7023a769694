package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error codes. The code is the machine-distinguishable kind of an error and
// is stable across releases.
const (
	// Authentication errors
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"

	// Validation errors
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeFileTooLarge = "FILE_TOO_LARGE"

	// Resource errors
	ErrCodeNotFound = "NOT_FOUND"

	// Service errors
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// Extensions exposes the code to GraphQL clients.
func (e *APIError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// Status returns the HTTP status for the error's code.
func (e *APIError) Status() int {
	switch e.Code {
	case ErrCodeUnauthorized, ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeInvalidInput:
		return http.StatusBadRequest
	case ErrCodeFileTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// Predefined errors
var (
	ErrUnauthorized  = NewAPIError(ErrCodeUnauthorized, "Authentication required")
	ErrNotFound      = NewAPIError(ErrCodeNotFound, "Resource not found")
	ErrInvalidInput  = NewAPIError(ErrCodeInvalidInput, "Invalid request body")
	ErrInternalError = NewAPIError(ErrCodeInternalError, "Internal server error")
)

// FromError returns the APIError wrapped in err. Anything else is reported
// as a generic internal error so storage details never reach the caller.
func FromError(err error) *APIError {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr
	}
	return ErrInternalError
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	var apiErr *APIError
	return stderrors.As(err, &apiErr) && apiErr.Code == code
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Respond sends the response matching err's kind.
func Respond(c *gin.Context, err error) {
	apiErr := FromError(err)
	RespondWithError(c, apiErr.Status(), apiErr)
}

// Helper functions for common error responses

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// PayloadTooLarge sends a 413 response
func PayloadTooLarge(c *gin.Context, message string) {
	if message == "" {
		message = "Payload too large"
	}
	RespondWithError(c, http.StatusRequestEntityTooLarge, NewAPIError(ErrCodeFileTooLarge, message))
}
