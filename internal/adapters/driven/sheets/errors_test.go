package sheets

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
)

func TestWrapError(t *testing.T) {
	plain := errors.New("plain")
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"nil passes through", nil, nil},
		{"non-API error passes through", plain, plain},
		{"401 maps to unauthorised", &googleapi.Error{Code: http.StatusUnauthorized}, ErrUnauthorized},
		{"403 maps to forbidden", &googleapi.Error{Code: http.StatusForbidden}, ErrForbidden},
		{"404 maps to not found", &googleapi.Error{Code: http.StatusNotFound}, ErrNotFound},
		{"429 maps to rate limited", &googleapi.Error{Code: http.StatusTooManyRequests}, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapError(tt.err))
		})
	}

	t.Run("unmapped API code passes through", func(t *testing.T) {
		gerr := &googleapi.Error{Code: http.StatusInternalServerError}
		assert.Equal(t, error(gerr), WrapError(gerr))
	})
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, IsRateLimited(ErrRateLimited))
	assert.True(t, IsRateLimited(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.False(t, IsRateLimited(&googleapi.Error{Code: http.StatusForbidden}))
	assert.False(t, IsRateLimited(errors.New("plain")))
	assert.False(t, IsRateLimited(nil))
}
