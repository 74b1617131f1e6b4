package handler

import (
	"errors"
	"net/http"
	"strings"

	sitedomain "club-site-go/internal/domain/site"
	teamsdomain "club-site-go/internal/domain/teams"
	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	list, err := h.Teams.ListTeams(r.Context())
	if err != nil {
		h.log.InternalError("teams.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, list, len(list))
}

// GetTeam returns the team detail record with its roster resolved at
// request time.
func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	team, err := h.Teams.GetTeamByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, teamsdomain.ErrTeamNotFound) {
			h.log.BusinessError("teams.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "team_not_found", "team not found")
			return
		}
		h.log.InternalError("teams.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	roster, err := h.Teams.Roster(r.Context(), id)
	if err != nil {
		h.log.InternalError("teams.get: roster failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sitedomain.HighlightFromTeam(*team, roster))
}

func (h *Handlers) GetTeamRoster(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	roster, err := h.Teams.Roster(r.Context(), id)
	if err != nil {
		if errors.Is(err, teamsdomain.ErrTeamNotFound) {
			h.log.BusinessError("teams.roster: team not found", err, "id", id)
			writeError(w, http.StatusNotFound, "team_not_found", "team not found")
			return
		}
		h.log.InternalError("teams.roster: roster failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, roster, len(roster))
}
