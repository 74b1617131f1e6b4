package httpserver

import (
	"net/http"
	"time"

	"club-site-go/internal/config"
	"club-site-go/internal/transport/httpserver/handler"
	authmw "club-site-go/internal/transport/httpserver/middleware"
	"club-site-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         86400,
	}).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		// Public site surface; the SPA reads everything without a token.
		r.Get("/site", handlers.Snapshot)
		r.Get("/news", handlers.ListNews)
		r.Get("/news/{id}", handlers.GetNews)
		r.Get("/matches", handlers.ListMatches)
		r.Get("/matches/schedule", handlers.Schedule)
		r.Get("/teams", handlers.ListTeams)
		r.Get("/teams/{id}", handlers.GetTeam)
		r.Get("/teams/{id}/roster", handlers.GetTeamRoster)
		r.Get("/products", handlers.ListProducts)
		r.Get("/products/{id}", handlers.GetProduct)
		r.Get("/partners", handlers.ListPartners)
		r.Get("/gallery", handlers.ListGallery)
		r.Get("/gallery/{id}", handlers.GetGalleryItem)
		r.Get("/organization", handlers.ListOrganization)
		r.Get("/content", handlers.GetContent)
		r.Get("/content/{section}", handlers.GetContentSection)

		auth := authmw.NewSupabaseAuth(cfg.Supabase)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)

			r.Get("/auth/me", handlers.AuthMe)

			r.Get("/admin/schemas", handlers.AdminSchemas)
			r.Get("/admin/schemas/{entity}", handlers.AdminSchema)
			r.Post("/admin/uploads", handlers.Upload)

			r.Get("/admin/content", handlers.ListContentRows)
			r.Put("/admin/content/{section}", handlers.UpsertContent)

			r.Post("/admin/{entity}", handlers.AdminCreate)
			r.Put("/admin/{entity}/{id}", handlers.AdminUpdate)
			r.Delete("/admin/{entity}/{id}", handlers.AdminDelete)
		})
	})

	if cfg.Storage.Backend == "local" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.LocalDir)))
		r.Get("/uploads/*", fs.ServeHTTP)
		log.Info("router: serving local uploads", "dir", cfg.Storage.LocalDir)
	}

	return r
}
