package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-flatnav/internal/app"
	"github.com/MKhiriev/go-flatnav/internal/service"
	"github.com/MKhiriev/go-flatnav/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidBlob:             http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStorageUnavailable:      http.StatusServiceUnavailable,

	store.ErrStorageUnavailable:   http.StatusServiceUnavailable,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

var statusMessageMap = map[int]string{
	http.StatusBadRequest:         app.MsgInvalidJSON,
	http.StatusUnauthorized:       app.MsgUnauthorized,
	http.StatusServiceUnavailable: app.MsgStorageUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromStatus returns the body text for an error status. Internal
// details never leave the proxy.
func messageFromStatus(status int) string {
	if msg, ok := statusMessageMap[status]; ok {
		return msg
	}
	return app.MsgInternalServerError
}
