package handler

import (
	"errors"
	"net/http"
	"strings"

	shopdomain "club-site-go/internal/domain/shop"
	sitedomain "club-site-go/internal/domain/site"
	"github.com/go-chi/chi/v5"
)

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Shop.List(r.Context())
	if err != nil {
		h.log.InternalError("shop.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeList(w, products, len(products))
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "id is required")
		return
	}

	product, err := h.Shop.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, shopdomain.ErrProductNotFound) {
			h.log.BusinessError("shop.get: not found", err, "id", id)
			writeError(w, http.StatusNotFound, "product_not_found", "product not found")
			return
		}
		h.log.InternalError("shop.get: get failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, sitedomain.HighlightFromProduct(*product))
}
