package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	contentdomain "club-site-go/internal/domain/content"
	"club-site-go/internal/repository/inmemory"
	"club-site-go/pkg/logger"
	"github.com/go-chi/chi/v5"
)

func newContentRouter(t *testing.T) http.Handler {
	t.Helper()

	service := contentdomain.NewService(inmemory.NewContentRepository())
	h := New(nil, nil, nil, nil, nil, service, nil, nil, 0, logger.New(io.Discard, slog.LevelError, "text"))

	r := chi.NewRouter()
	r.Get("/api/content", h.GetContent)
	r.Get("/api/content/{section}", h.GetContentSection)
	r.Get("/api/admin/content", h.ListContentRows)
	r.Put("/api/admin/content/{section}", h.UpsertContent)
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestContentEndpoints_UpsertThenResolve(t *testing.T) {
	router := newContentRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/admin/content/hero", `{"title":"Bem-vindos","subtitle":""}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("upsert status = %d, body %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, router, http.MethodGet, "/api/content/hero", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get section status = %d", rec.Code)
	}

	var resolved contentdomain.Resolved
	if err := json.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decode resolved: %v", err)
	}
	if resolved.Title != "Bem-vindos" {
		t.Fatalf("resolved title = %q, want stored override", resolved.Title)
	}
	if resolved.Subtitle == "" {
		t.Fatalf("empty stored subtitle should fall back to the section default")
	}
}

func TestContentEndpoints_UpsertReplacesRow(t *testing.T) {
	router := newContentRouter(t)

	doRequest(t, router, http.MethodPut, "/api/admin/content/shop", `{"title":"Primeira"}`)
	doRequest(t, router, http.MethodPut, "/api/admin/content/shop", `{"title":"Segunda"}`)

	rec := doRequest(t, router, http.MethodGet, "/api/admin/content", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}

	var list struct {
		Items []contentdomain.SiteContent `json:"items"`
		Total int                         `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("expected a single stored row after two upserts, got %d", list.Total)
	}
	if list.Items[0].Title != "Segunda" {
		t.Fatalf("stored title = %q, want latest write", list.Items[0].Title)
	}
}

func TestContentEndpoints_UnknownSection(t *testing.T) {
	router := newContentRouter(t)

	rec := doRequest(t, router, http.MethodPut, "/api/admin/content/banner", `{"title":"X"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("upsert unknown section status = %d, want 400", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "unknown_section" {
		t.Fatalf("error code = %q", envelope.Error.Code)
	}

	rec = doRequest(t, router, http.MethodGet, "/api/content/banner", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get unknown section status = %d, want 404", rec.Code)
	}
}

func TestContentEndpoints_ResolveAllCoversKnownSections(t *testing.T) {
	router := newContentRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/content", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get content status = %d", rec.Code)
	}

	var resolved map[string]contentdomain.Resolved
	if err := json.Unmarshal(rec.Body.Bytes(), &resolved); err != nil {
		t.Fatalf("decode content map: %v", err)
	}
	for _, section := range contentdomain.KnownSections() {
		entry, ok := resolved[section]
		if !ok {
			t.Fatalf("section %q missing from resolved map", section)
		}
		if entry.Title == "" {
			t.Fatalf("section %q resolved with empty title", section)
		}
	}
}
