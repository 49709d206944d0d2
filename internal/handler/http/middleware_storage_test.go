package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestWithStorage(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		wantStatus int
		wantNext   bool
	}{
		{name: "available", wantStatus: http.StatusTeapot, wantNext: true},
		{name: "unavailable", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.blob.EXPECT().Available(gomock.Any()).Return(tt.pingErr)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusTeapot)
			})

			rec := httptest.NewRecorder()
			h.withStorage(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sync", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}
