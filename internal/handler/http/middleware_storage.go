package http

import (
	"net/http"

	"github.com/MKhiriev/go-flatnav/internal/app"
	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
)

// withStorage answers 503 before touching the handler when the database
// cannot be reached.
func (h *Handler) withStorage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.blobs.Available(r.Context()); err != nil {
			logger.FromRequest(r).Err(err).Str("func", "*Handler.withStorage").Msg("storage is not available")
			utils.WriteJSONError(w, app.MsgStorageUnavailable, http.StatusServiceUnavailable)
			return
		}

		next.ServeHTTP(w, r)
	})
}
