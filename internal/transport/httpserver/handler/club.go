package handler

import (
	"errors"
	"net/http"
	"strings"

	clubdomain "club-site-go/internal/domain/club"
	sitedomain "club-site-go/internal/domain/site"
	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Club.ListPartners(r.Context())
	if err != nil {
		h.log.InternalError("club.partners: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, partners, len(partners))
}

func (h *Handlers) ListGallery(w http.ResponseWriter, r *http.Request) {
	items, err := h.Club.ListGallery(r.Context())
	if err != nil {
		h.log.InternalError("club.gallery: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, items, len(items))
}

func (h *Handlers) GetGalleryItem(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	item, err := h.Club.GetGalleryItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, clubdomain.ErrGalleryItemNotFound) {
			h.log.BusinessError("club.gallery: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "gallery_item_not_found", "gallery item not found")
			return
		}
		h.log.InternalError("club.gallery: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sitedomain.HighlightFromGallery(*item))
}

func (h *Handlers) ListOrganization(w http.ResponseWriter, r *http.Request) {
	members, err := h.Club.ListOrganization(r.Context())
	if err != nil {
		h.log.InternalError("club.organization: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, members, len(members))
}
