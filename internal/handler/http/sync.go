package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-flatnav/internal/logger"
	"github.com/MKhiriev/go-flatnav/internal/utils"
	"github.com/MKhiriev/go-flatnav/models"
)

// getDashboard returns the stored document verbatim, or {"empty":true}.
func (h *Handler) getDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	value, found, err := h.blobs.GetDashboard(r.Context())
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.getDashboard").Int("status", status).Msg("failed to read dashboard")
		utils.WriteJSONError(w, messageFromStatus(status), status)
		return
	}

	if !found {
		utils.WriteJSON(w, models.EmptyResponse{Empty: true}, http.StatusOK)
		return
	}

	utils.WriteRawJSON(w, value, http.StatusOK)
}

func (h *Handler) putDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.putDashboard").Msg("failed to read request body")
		utils.WriteJSONError(w, messageFromStatus(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	if err = h.blobs.PutDashboard(r.Context(), body); err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.putDashboard").Int("status", status).Msg("failed to store dashboard")
		utils.WriteJSONError(w, messageFromStatus(status), status)
		return
	}

	log.Info().Int("size", len(body)).Msg("dashboard replaced")

	utils.WriteJSON(w, models.SuccessResponse{Success: true}, http.StatusOK)
}
