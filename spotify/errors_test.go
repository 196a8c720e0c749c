package spotify

import (
	"errors"
	"fmt"
	"testing"

	spot "github.com/zmb3/spotify/v2"
	"github.com/stretchr/testify/assert"
)

func TestWrapAPIErrorNil(t *testing.T) {
	assert.NoError(t, wrapAPIError("op", nil))
}

func TestWrapAPIErrorClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"unauthorized", 401, ErrAuth},
		{"forbidden", 403, ErrAuth},
		{"not found", 404, ErrNotFound},
		{"rate limited", 429, ErrRateLimited},
		{"bad request", 400, ErrInvalidRequest},
		{"server error", 500, ErrUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := spot.Error{Message: "boom", Status: tt.status}
			err := wrapAPIError("pause playback", upstream)

			var apiErr *APIError
			if assert.ErrorAs(t, err, &apiErr) {
				assert.Equal(t, tt.want, apiErr.Kind)
				assert.Equal(t, "pause playback", apiErr.Op)
			}
			// The upstream message must survive verbatim.
			assert.Contains(t, err.Error(), "boom")
		})
	}
}

func TestWrapAPIErrorNonSpotify(t *testing.T) {
	cause := errors.New("connection refused")
	err := wrapAPIError("list devices", fmt.Errorf("wrapped: %w", cause))

	var apiErr *APIError
	if assert.ErrorAs(t, err, &apiErr) {
		assert.Equal(t, ErrUpstream, apiErr.Kind)
	}
	assert.ErrorIs(t, err, cause)
}
