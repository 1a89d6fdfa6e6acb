package handlers

import (
	"net/http"

	"github.com/arvelin/staffdesk-be/internal/monitoring"
)

// SystemHandler serves host resource snapshots collected by the background updater.
type SystemHandler struct {
	updater *monitoring.SystemUpdater
}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler(updater *monitoring.SystemUpdater) *SystemHandler {
	return &SystemHandler{updater: updater}
}

// Get handles the request for the latest system snapshot.
func (h *SystemHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot := h.updater.Latest()
	if snapshot == nil {
		writeError(w, http.StatusServiceUnavailable, "No sample available yet")
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// Health is the unauthenticated liveness probe.
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
