package adapter

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapStatus(t *testing.T) {
	tests := []struct {
		code   int
		target error
	}{
		{code: http.StatusUnauthorized, target: ErrUnauthorized},
		{code: http.StatusForbidden, target: ErrForbidden},
		{code: http.StatusTooManyRequests, target: ErrForbidden},
		{code: http.StatusNotFound, target: ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.code), func(t *testing.T) {
			assert.ErrorIs(t, mapStatus(tt.code, "body"), tt.target)
		})
	}
}

func TestMapStatus_Remote(t *testing.T) {
	err := mapStatus(http.StatusBadGateway, "upstream")

	var remoteErr *RemoteError
	assert.True(t, errors.As(err, &remoteErr))
	assert.Equal(t, http.StatusBadGateway, remoteErr.StatusCode)
	assert.Equal(t, "remote store: http 502: upstream", err.Error())
}

func TestMapGitHubError_Nil(t *testing.T) {
	assert.NoError(t, mapGitHubError("list", nil, nil))
}

func TestNetworkError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := &NetworkError{Op: "read", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "network error")
}
