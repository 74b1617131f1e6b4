package handler

import "net/http"

// Snapshot serves the whole-site payload the public page mounts from.
func (h *Handlers) Snapshot(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.Site.Snapshot(r.Context())
	if err != nil {
		h.log.InternalError("site.snapshot: fetch failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}
