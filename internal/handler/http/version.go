package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.appInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(serverVersion))
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, h.appInfo.GetStatus(r.Context()), http.StatusOK)
}

// health answers the client's reachability probe. HEAD requests get the
// status line only.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}
