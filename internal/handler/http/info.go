package http

import (
	"net/http"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
)

// getProxyInfo answers 200 even when storage is down so clients can tell a
// running proxy with a broken database from one that is not running.
func (h *Handler) getProxyInfo(w http.ResponseWriter, r *http.Request) {
	info, err := h.info.Info(r.Context())
	if err != nil {
		status := statusFromError(err)
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getProxyInfo").Int("status", status).Msg("failed to collect proxy info")
		utils.WriteJSONError(w, messageFromStatus(status), status)
		return
	}

	utils.WriteJSON(w, info, http.StatusOK)
}
