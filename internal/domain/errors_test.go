package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderError(t *testing.T) {
	tests := []struct {
		name          string
		provider      string
		underlyingErr error
		wantContains  []string
		wantRetryable bool
	}{
		{
			name:          "error message includes provider and underlying error",
			provider:      "amadeus",
			underlyingErr: errors.New("connection failed"),
			wantContains:  []string{"amadeus", "connection failed"},
			wantRetryable: false, // Default is non-retryable
		},
		{
			name:          "error message with a different cause",
			provider:      "amadeus",
			underlyingErr: errors.New("bad gateway"),
			wantContains:  []string{"amadeus", "bad gateway"},
			wantRetryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError(tt.provider, tt.underlyingErr)

			for _, want := range tt.wantContains {
				assert.Contains(t, err.Error(), want)
			}
			assert.True(t, errors.Is(err, tt.underlyingErr))
			assert.Equal(t, tt.wantRetryable, err.Retryable)
		})
	}
}

func TestNewRetryableProviderError(t *testing.T) {
	err := NewRetryableProviderError("amadeus", errors.New("rate limit exceeded"))

	assert.Contains(t, err.Error(), "amadeus")
	assert.True(t, err.Retryable)
	assert.True(t, IsRetryable(err))
}

func TestNewProviderTimeoutError(t *testing.T) {
	err := NewProviderTimeoutError("amadeus")

	assert.Contains(t, err.Error(), "amadeus")
	assert.True(t, errors.Is(err, ErrProviderTimeout))
	assert.True(t, IsProviderTimeout(err))
	assert.True(t, err.Retryable)
}

func TestNewProviderUnavailableError(t *testing.T) {
	err := NewProviderUnavailableError("amadeus")

	assert.Contains(t, err.Error(), "amadeus")
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		message   string
		wantError string
	}{
		{
			name:      "origin field validation",
			field:     "origin",
			message:   "must be a 3-letter code",
			wantError: "origin: must be a 3-letter code",
		},
		{
			name:      "date field validation",
			field:     "original_date",
			message:   "must be in YYYY-MM-DD format",
			wantError: "original_date: must be in YYYY-MM-DD format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)
			assert.Equal(t, tt.wantError, err.Error())
			assert.Equal(t, tt.field, err.Field)
			assert.Equal(t, tt.message, err.Message)
		})
	}
}

func TestWrapInvalidRequest(t *testing.T) {
	tests := []struct {
		name         string
		format       string
		args         []interface{}
		wantContains string
	}{
		{
			name:         "single argument",
			format:       "field %s is required",
			args:         []interface{}{"origin"},
			wantContains: "field origin is required",
		},
		{
			name:         "no arguments",
			format:       "invalid request format",
			args:         nil,
			wantContains: "invalid request format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := WrapInvalidRequest(tt.format, tt.args...)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
			assert.Contains(t, err.Error(), tt.wantContains)
		})
	}
}

func TestIsRetryableWithPlainError(t *testing.T) {
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsRetryable(nil))
}
