package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromUpstreamStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode ErrorCode
	}{
		{"404 means unknown location", http.StatusNotFound, ErrCodeLocationNotFound},
		{"401 means bad key", http.StatusUnauthorized, ErrCodeInvalidAPIKey},
		{"500 is a generic fetch failure", http.StatusInternalServerError, ErrCodeWeatherFetchFailed},
		{"429 is a generic fetch failure", http.StatusTooManyRequests, ErrCodeWeatherFetchFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromUpstreamStatus(tt.status, "tokyo")
			assert.Equal(t, tt.wantCode, err.Code)
		})
	}
}

func TestFromUpstreamStatus_NotFoundMessageNamesLocation(t *testing.T) {
	err := FromUpstreamStatus(http.StatusNotFound, "atlantis")
	assert.Equal(t, "Location 'atlantis' not found. Please check spelling and try again.", err.UserMessage())
}

func TestIsValidation(t *testing.T) {
	assert.True(t, IsValidation(NewLocationEmptyError()))
	assert.True(t, IsValidation(NewLocationNotFoundError("x")))
	assert.True(t, IsValidation(NewInvalidAPIKeyError()))
	assert.False(t, IsValidation(NewInternalError(fmt.Errorf("boom"))))
	assert.False(t, IsValidation(fmt.Errorf("plain error")))
}

func TestIsValidation_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("fetching weather: %w", NewLocationNotFoundError("x"))
	assert.True(t, IsValidation(wrapped))
}

func TestAsStandard(t *testing.T) {
	se := NewLocationEmptyError()
	assert.Same(t, se, AsStandard(se))

	out := AsStandard(fmt.Errorf("boom"))
	assert.Equal(t, ErrCodeInternal, out.Code)
	assert.Equal(t, "boom", out.Details)
}
