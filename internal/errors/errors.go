package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthenticated is returned when a bearer token is missing or invalid.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden is returned when the authenticated user's role is not permitted.
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a resource does not exist.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited is returned when a rate-limit quota is exceeded.
	ErrRateLimited = errors.New("too many requests")
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering with an email that already exists.
	ErrEmailTaken = errors.New("email already taken")
	// ErrSlugTaken is returned when an episode slug is already in use.
	ErrSlugTaken = errors.New("slug already taken")
)

// ValidationError carries field-level messages for a 400 response.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a validation error with field messages.
func NewValidationError(message string, fields map[string]string) *ValidationError {
	return &ValidationError{Message: message, Fields: fields}
}

// ErrorResponse is the canonical error envelope for every failure.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// NewErrorResponse builds the canonical error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Status: "error", Message: message}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// ToErrorResponse converts an HTTPError to the canonical envelope.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Status: "error", Message: e.Message, Fields: e.Fields}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return &HTTPError{StatusCode: http.StatusBadRequest, Message: ve.Message, Fields: ve.Fields}
	}

	switch {
	case errors.Is(err, ErrUnauthenticated), errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, ErrForbidden):
		return NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, ErrNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrRateLimited):
		return NewHTTPError(http.StatusTooManyRequests, err.Error())
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrSlugTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
