package handler

import (
	"errors"
	"net/http"
	"strings"

	newsdomain "club-site-go/internal/domain/news"
	sitedomain "club-site-go/internal/domain/site"
	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	items, err := h.News.List(r.Context())
	if err != nil {
		h.log.InternalError("news.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, items, len(items))
}

func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	item, err := h.News.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, newsdomain.ErrNewsNotFound) {
			h.log.BusinessError("news.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "news_not_found", "news item not found")
			return
		}
		h.log.InternalError("news.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sitedomain.HighlightFromNews(*item))
}
