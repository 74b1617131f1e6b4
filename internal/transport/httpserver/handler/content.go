package handler

import (
	"errors"
	"net/http"
	"strings"

	contentdomain "club-site-go/internal/domain/content"
	"github.com/go-chi/chi/v5"
)

// GetContent returns the resolved copy for every known section, with
// stored rows merged over the built-in defaults.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.Content.ResolveAll(r.Context())
	if err != nil {
		h.log.InternalError("content: resolve failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

func (h *Handlers) GetContentSection(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimSpace(chi.URLParam(r, "section"))

	resolved, err := h.Content.ResolveSection(r.Context(), section)
	if err != nil {
		if errors.Is(err, contentdomain.ErrUnknownSection) {
			h.log.BusinessError("content: unknown section", err, "section", section)
			writeError(w, http.StatusNotFound, "unknown_section", "unknown section")
			return
		}
		h.log.InternalError("content: resolve section failed", err, "section", section)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, resolved)
}

// ListContentRows returns the raw stored rows, without default merging.
// The admin form edits stored values, not the resolved view.
func (h *Handlers) ListContentRows(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Content.List(r.Context())
	if err != nil {
		h.log.InternalError("content: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, rows, len(rows))
}

type upsertContentRequest struct {
	Title    string  `json:"title"`
	Subtitle string  `json:"subtitle"`
	ImageURL *string `json:"image_url"`
}

func (h *Handlers) UpsertContent(w http.ResponseWriter, r *http.Request) {
	section := strings.TrimSpace(chi.URLParam(r, "section"))

	var req upsertContentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.log.BusinessError("content: invalid payload", err, "section", section)
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	row, err := h.Content.Upsert(r.Context(), contentdomain.UpsertInput{
		Section:  section,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, contentdomain.ErrUnknownSection) {
			h.log.BusinessError("content: unknown section", err, "section", section)
			writeError(w, http.StatusBadRequest, "unknown_section", "unknown section")
			return
		}
		h.log.InternalError("content: upsert failed", err, "section", section)
		writeError(w, http.StatusBadRequest, "write_failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, row)
}
