package app

import (
	"fmt"
	"net/http"

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

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	newsService := newsdomain.NewService(newsrepo.NewPostgres(dbConn))
	matchesService := matchesdomain.NewService(matchesrepo.NewPostgres(dbConn), clockwork.NewRealClock())
	teamsService := teamsdomain.NewService(teamsrepo.NewPostgres(dbConn))
	shopService := shopdomain.NewService(shoprepo.NewPostgres(dbConn))
	clubService := clubdomain.NewService(clubrepo.NewPostgres(dbConn))
	contentService := contentdomain.NewService(contentrepo.NewPostgres(dbConn))
	siteService := sitedomain.NewService(
		newsService,
		matchesService,
		teamsService,
		shopService,
		clubService,
		contentService,
	)

	uploads, err := newStorage(cfg)
	if err != nil {
		return nil, err
	}

	handlers := handler.New(
		newsService,
		matchesService,
		teamsService,
		shopService,
		clubService,
		contentService,
		siteService,
		uploads,
		cfg.Storage.MaxUploadSize,
		log,
	)

	router := httpserver.NewRouter(cfg, handlers, log)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func newStorage(cfg config.Config) (storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "local":
		return storage.NewLocal(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
	case "supabase":
		return storage.NewSupabase(cfg.Supabase, cfg.Storage)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
