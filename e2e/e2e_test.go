//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"club-site-go/internal/config"
	"club-site-go/internal/db"
	clubdomain "club-site-go/internal/domain/club"
	contentdomain "club-site-go/internal/domain/content"
	matchesdomain "club-site-go/internal/domain/matches"
	newsdomain "club-site-go/internal/domain/news"
	shopdomain "club-site-go/internal/domain/shop"
	sitedomain "club-site-go/internal/domain/site"
	teamsdomain "club-site-go/internal/domain/teams"
	clubrepo "club-site-go/internal/repository/postgres/club"
	contentrepo "club-site-go/internal/repository/postgres/content"
	matchesrepo "club-site-go/internal/repository/postgres/matches"
	newsrepo "club-site-go/internal/repository/postgres/news"
	shoprepo "club-site-go/internal/repository/postgres/shop"
	teamsrepo "club-site-go/internal/repository/postgres/teams"
	"club-site-go/internal/storage"
	"club-site-go/internal/transport/httpserver"
	"club-site-go/internal/transport/httpserver/handler"
	"club-site-go/pkg/logger"
	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"
)

type testEnv struct {
	server     *httptest.Server
	authServer *httptest.Server
	db         *gorm.DB
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	authServer := newAuthServer(t)
	log := logger.New(io.Discard, slog.LevelError, "text")

	cfg := config.Config{
		CORSOrigins: []string{"http://localhost:5173"},
		DB:          config.DBConfig{DSN: dsn},
		Supabase: config.SupabaseConfig{
			URL:            authServer.URL,
			PublishableKey: "test-key",
			AuthTimeout:    2 * time.Second,
		},
		Storage: config.StorageConfig{
			Backend:       "local",
			LocalDir:      t.TempDir(),
			MaxUploadSize: 1 << 20,
		},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	uploads, err := storage.NewLocal(cfg.Storage.LocalDir, "")
	if err != nil {
		t.Fatalf("local storage: %v", err)
	}

	newsService := newsdomain.NewService(newsrepo.NewPostgres(dbConn))
	matchesService := matchesdomain.NewService(matchesrepo.NewPostgres(dbConn), clockwork.NewRealClock())
	teamsService := teamsdomain.NewService(teamsrepo.NewPostgres(dbConn))
	shopService := shopdomain.NewService(shoprepo.NewPostgres(dbConn))
	clubService := clubdomain.NewService(clubrepo.NewPostgres(dbConn))
	contentService := contentdomain.NewService(contentrepo.NewPostgres(dbConn))
	siteService := sitedomain.NewService(newsService, matchesService, teamsService, shopService, clubService, contentService)

	handlers := handler.New(
		newsService, matchesService, teamsService, shopService,
		clubService, contentService, siteService,
		uploads, cfg.Storage.MaxUploadSize, log,
	)

	router := httpserver.NewRouter(cfg, handlers, log)
	server := httptest.NewServer(router)

	return &testEnv{server: server, authServer: authServer, db: dbConn}
}

func (e *testEnv) Close() {
	e.server.Close()
	e.authServer.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func newAuthServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		auth := r.Header.Get("Authorization")
		token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
		if !strings.HasPrefix(auth, "Bearer ") || token == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		payload := map[string]interface{}{
			"id":    token,
			"email": token + "@example.com",
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE team_members, teams, news, matches, products, partners, gallery, organization, site_content RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type newsResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

type newsListResponse struct {
	Items []newsResponse `json:"items"`
	Total int            `json:"total"`
}

func TestE2EHealthAndAuth(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	resp, _ := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health status = %d", resp.StatusCode)
	}

	resp, _ = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/news", "", map[string]interface{}{"title": "X"})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unauthenticated admin write status = %d, want 401", resp.StatusCode)
	}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/auth/me", "editor-1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("auth/me status = %d: %s", resp.StatusCode, body)
	}
	var me struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &me); err != nil {
		t.Fatalf("decode auth/me: %v", err)
	}
	if me.ID != "editor-1" {
		t.Fatalf("auth/me id = %q", me.ID)
	}
}

func TestE2ENewsCRUDRoundTrip(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	token := "editor-1"

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/news", token, map[string]interface{}{
		"title":      "Vitória no campeonato",
		"content":    "<p>Grande jogo.</p>",
		"image_url":  "https://example.com/a.jpg",
		"id":         "client-supplied",
		"created_at": "2020-01-01T00:00:00Z",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create status = %d: %s", resp.StatusCode, body)
	}

	var created newsResponse
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("decode created: %v", err)
	}
	if created.ID == "" || created.ID == "client-supplied" {
		t.Fatalf("id %q should be server-assigned", created.ID)
	}
	if created.CreatedAt.Year() == 2020 {
		t.Fatalf("created_at should ignore the client value")
	}

	resp, body = requestJSON(t, client, http.MethodGet, env.server.URL+"/api/news", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var list newsListResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if list.Total != 1 || list.Items[0].ID != created.ID {
		t.Fatalf("list = %+v, want the created item", list)
	}

	resp, body = requestJSON(t, client, http.MethodPut, env.server.URL+"/api/admin/news/"+created.ID, token, map[string]interface{}{
		"title": "Vitória (atualizado)",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update status = %d: %s", resp.StatusCode, body)
	}
	var updated newsResponse
	if err := json.Unmarshal(body, &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Title != "Vitória (atualizado)" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.ImageURL == nil || *updated.ImageURL != "https://example.com/a.jpg" {
		t.Fatalf("image_url should survive an update that omits it")
	}

	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/admin/news/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}

	resp, body = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/admin/news/"+created.ID, token, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("second delete status = %d: %s", resp.StatusCode, body)
	}
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "not_found" {
		t.Fatalf("error code = %q", envelope.Error.Code)
	}
}

func TestE2EContentUpsertBySection(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	token := "editor-1"

	for _, title := range []string{"Primeiro", "Segundo"} {
		resp, body := requestJSON(t, client, http.MethodPut, env.server.URL+"/api/admin/content/hero", token, map[string]interface{}{
			"title": title,
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("upsert status = %d: %s", resp.StatusCode, body)
		}
	}

	var count int64
	if err := env.db.Raw("SELECT COUNT(1) FROM site_content WHERE section = 'hero'").Scan(&count).Error; err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("site_content hero rows = %d, want 1", count)
	}

	resp, body := requestJSON(t, client, http.MethodGet, env.server.URL+"/api/content/hero", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("resolve status = %d", resp.StatusCode)
	}
	var resolved struct {
		Title    string `json:"title"`
		Subtitle string `json:"subtitle"`
	}
	if err := json.Unmarshal(body, &resolved); err != nil {
		t.Fatalf("decode resolved: %v", err)
	}
	if resolved.Title != "Segundo" {
		t.Fatalf("title = %q, want latest upsert", resolved.Title)
	}
	if resolved.Subtitle == "" {
		t.Fatalf("subtitle should fall back to the default")
	}
}

func TestE2ETeamDeleteCascadesMembers(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	token := "editor-1"

	resp, body := requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/teams", token, map[string]interface{}{
		"name": "Séniores Masculinos",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create team status = %d: %s", resp.StatusCode, body)
	}
	var team struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPost, env.server.URL+"/api/admin/team_members", token, map[string]interface{}{
		"name":    "João Silva",
		"team_id": team.ID,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create member status = %d: %s", resp.StatusCode, body)
	}

	resp, _ = requestJSON(t, client, http.MethodDelete, env.server.URL+"/api/admin/teams/"+team.ID, token, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete team status = %d", resp.StatusCode)
	}

	var members int64
	if err := env.db.Raw("SELECT COUNT(1) FROM team_members WHERE team_id = ?", team.ID).Scan(&members).Error; err != nil {
		t.Fatalf("count members: %v", err)
	}
	if members != 0 {
		t.Fatalf("members after team delete = %d, want 0", members)
	}
}

func TestE2EUploadStoresFile(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "team-photo.jpg")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("not-really-a-jpeg")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/admin/uploads", &buf)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer editor-1")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("upload status = %d: %s", resp.StatusCode, body)
	}

	var uploaded struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(body, &uploaded); err != nil {
		t.Fatalf("decode upload response: %v", err)
	}
	if !strings.Contains(uploaded.URL, "/uploads/") || !strings.HasSuffix(uploaded.URL, ".jpg") {
		t.Fatalf("upload url = %q", uploaded.URL)
	}

	resp2, err := client.Get(env.server.URL + uploaded.URL)
	if err != nil {
		t.Fatalf("fetch uploaded file: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusOK {
		t.Fatalf("serve uploaded file status = %d", resp2.StatusCode)
	}
}
