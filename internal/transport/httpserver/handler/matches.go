package handler

import (
	"net/http"
	"strings"
)

type scheduleResponse struct {
	Upcoming interface{} `json:"upcoming"`
	Past     interface{} `json:"past"`
}

// ListMatches serves the calendar. The window query parameter selects the
// derived view: upcoming, past, or all (the raw calendar, date ascending).
func (h *Handlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	window := strings.TrimSpace(r.URL.Query().Get("window"))

	switch window {
	case "", "all":
		list, err := h.Matches.List(r.Context())
		if err != nil {
			h.log.InternalError("matches.list: list failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		writeList(w, list, len(list))

	case "upcoming", "past":
		upcoming, past, err := h.Matches.Schedule(r.Context())
		if err != nil {
			h.log.InternalError("matches.list: schedule failed", err)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
			return
		}
		if window == "upcoming" {
			writeList(w, upcoming, len(upcoming))
		} else {
			writeList(w, past, len(past))
		}

	default:
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid window")
	}
}

// Schedule serves both windows in one response.
func (h *Handlers) Schedule(w http.ResponseWriter, r *http.Request) {
	upcoming, past, err := h.Matches.Schedule(r.Context())
	if err != nil {
		h.log.InternalError("matches.schedule: schedule failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, scheduleResponse{Upcoming: upcoming, Past: past})
}
