package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/FACorreiaa/cms-admin/internal/app/designsystem"
	"github.com/FACorreiaa/cms-admin/internal/app/menu"
	"github.com/FACorreiaa/cms-admin/internal/app/navpanel"
	"github.com/FACorreiaa/cms-admin/internal/app/preferences"
	database "github.com/FACorreiaa/cms-admin/internal/db"
	"github.com/FACorreiaa/cms-admin/internal/pkg/config"
	"github.com/FACorreiaa/cms-admin/internal/routes"
)

// Server holds the dependencies for the HTTP server
type Server struct {
	cfg    *config.Config
	logger *zap.Logger
	dbPool *pgxpool.Pool
	router http.Handler
}

// New creates a new Server instance. A database is only opened for the
// postgres preferences backend.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, error) {
	s := &Server{
		cfg:    cfg,
		logger: logger,
	}

	if cfg.PreferencesBackend == config.BackendPostgres {
		dbPool, err := s.setupDatabase(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
		s.dbPool = dbPool
	}

	return s, nil
}

// setupDatabase initializes the database connection and runs migrations
func (s *Server) setupDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	s.logger.Info("Setting up database connection and migrations")

	dbConfig, err := database.NewDatabaseConfig(s.cfg, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database configuration: %w", err)
	}

	pool, err := database.Init(ctx, dbConfig.ConnectionURL, s.cfg.Repositories.Postgres, s.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database pool: %w", err)
	}

	if !database.WaitForDB(ctx, pool, s.logger) {
		pool.Close()
		return nil, fmt.Errorf("database at %s:%s is unreachable", s.cfg.Repositories.Postgres.Host, s.cfg.Repositories.Postgres.Port)
	}

	if err = database.RunMigrations(dbConfig.ConnectionURL, s.logger); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	s.logger.Info("Database setup completed successfully")
	return pool, nil
}

// Dependencies assembles the long-lived collaborators of the routes.
func (s *Server) Dependencies() (routes.Dependencies, error) {
	links, err := menu.Load(s.cfg.Menu.File)
	if err != nil {
		return routes.Dependencies{}, fmt.Errorf("failed to load menu: %w", err)
	}

	return routes.Dependencies{
		Config:      s.cfg,
		Mounts:      navpanel.NewMounts(s.cfg.NavMountTTL, s.logger.Named("mounts")),
		Widgets:     designsystem.New(),
		Preferences: s.preferenceResolver(),
		Menu:        links,
	}, nil
}

func (s *Server) preferenceResolver() preferences.Resolver {
	switch s.cfg.PreferencesBackend {
	case config.BackendMemory:
		return preferences.OwnerResolver(preferences.NewMemoryStore(s.logger.Named("preferences")))
	case config.BackendPostgres:
		return preferences.OwnerResolver(preferences.NewPostgresStore(s.dbPool, s.logger.Named("preferences")))
	default:
		return preferences.SessionResolver()
	}
}

// HTTPServer creates and configures the HTTP server
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         ":" + s.cfg.ServerPort,
		Handler:      s.router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
}

// SetRouter sets the HTTP router/handler
func (s *Server) SetRouter(router http.Handler) {
	s.router = router
}

// Close closes all server resources
func (s *Server) Close() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
}
