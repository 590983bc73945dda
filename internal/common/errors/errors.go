// Package errors provides standardized error handling for the recommendation pipeline.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeLocationEmpty      ErrorCode = "LOCATION_EMPTY"
	ErrCodeLocationNotFound   ErrorCode = "LOCATION_NOT_FOUND"
	ErrCodeInvalidAPIKey      ErrorCode = "INVALID_API_KEY"
	ErrCodeWeatherFetchFailed ErrorCode = "WEATHER_FETCH_FAILED"
	ErrCodeGeolocationFailed  ErrorCode = "GEOLOCATION_FAILED"
	ErrCodeGenerationFailed   ErrorCode = "GENERATION_FAILED"
	ErrCodeInternal           ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error. Validation errors
// carry a message safe to show directly to the user.
type StandardError struct {
	Code      ErrorCode `json:"code"`
	Message   string    `json:"message"`
	Details   string    `json:"details,omitempty"`
	Retryable bool      `json:"retryable"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// UserMessage returns the text suitable for end-user display.
func (e *StandardError) UserMessage() string {
	return e.Message
}

// NewLocationEmptyError is returned when query extraction yields no location.
func NewLocationEmptyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeLocationEmpty,
		Message:   "Couldn't identify a location in your query. Please try again with a clearer location.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewLocationNotFoundError maps an upstream 404 to a user-facing validation error.
func NewLocationNotFoundError(location string) *StandardError {
	return &StandardError{
		Code:      ErrCodeLocationNotFound,
		Message:   fmt.Sprintf("Location '%s' not found. Please check spelling and try again.", location),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidAPIKeyError maps an upstream 401 to a user-facing validation error.
func NewInvalidAPIKeyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidAPIKey,
		Message:   "Invalid API key. Please check your OpenWeatherMap API key.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewWeatherFetchFailedError wraps any other upstream weather failure.
func NewWeatherFetchFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeWeatherFetchFailed,
		Message:   fmt.Sprintf("Failed to fetch weather data: %v", err),
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGeolocationFailedError wraps an IP geolocation failure. Callers fall back
// to the configured default location rather than surfacing this.
func NewGeolocationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGeolocationFailed,
		Message:   "Could not determine current location",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationFailedError wraps an LLM failure. Never shown to users; the
// deterministic composer masks it.
func NewGenerationFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationFailed,
		Message:   "Outfit generation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error with a generic user message.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   fmt.Sprintf("An unexpected error occurred: %v", err),
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// FromUpstreamStatus translates a weather provider HTTP status into the
// appropriate validation error. Anything that isn't 404 or 401 becomes a
// generic wrapped fetch failure.
func FromUpstreamStatus(status int, location string) *StandardError {
	switch status {
	case http.StatusNotFound:
		return NewLocationNotFoundError(location)
	case http.StatusUnauthorized:
		return NewInvalidAPIKeyError()
	default:
		return NewWeatherFetchFailedError(fmt.Errorf("status %d", status))
	}
}

// IsValidation reports whether err is a user-facing validation error.
func IsValidation(err error) bool {
	var se *StandardError
	if !errors.As(err, &se) {
		return false
	}
	switch se.Code {
	case ErrCodeLocationEmpty, ErrCodeLocationNotFound, ErrCodeInvalidAPIKey, ErrCodeWeatherFetchFailed:
		return true
	}
	return false
}

// AsStandard extracts a *StandardError from err, wrapping unknown errors as internal.
func AsStandard(err error) *StandardError {
	var se *StandardError
	if errors.As(err, &se) {
		return se
	}
	return NewInternalError(err)
}
