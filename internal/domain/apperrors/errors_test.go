package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchError(t *testing.T) {
	err := NewFetchError(401)

	assert.EqualError(t, err, "github events request failed with status 401")

	var fetchErr *FetchError
	wrapped := fmt.Errorf("error fetching events: %w", err)
	require.ErrorAs(t, wrapped, &fetchErr)
	assert.Equal(t, 401, fetchErr.StatusCode)
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := NewTransportError("github", cause)

	assert.EqualError(t, err, "github: network error: dial tcp: connection refused")
	assert.ErrorIs(t, err, cause)
}

func TestGenerationError_Unwrap(t *testing.T) {
	cause := errors.New("rate limited")
	err := NewGenerationError(cause)

	assert.EqualError(t, err, "digest generation failed: rate limited")
	assert.ErrorIs(t, err, cause)
}

func TestNotifyError(t *testing.T) {
	err := NewNotifyError(429)

	assert.EqualError(t, err, "discord webhook returned status 429")

	var notifyErr *NotifyError
	require.ErrorAs(t, fmt.Errorf("error sending digest: %w", err), &notifyErr)
	assert.Equal(t, 429, notifyErr.StatusCode)
}
