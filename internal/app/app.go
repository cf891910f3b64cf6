package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/kanban/internal/api"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/position"
	boardservice "github.com/thenoetrevino/kanban/internal/services/board"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db *sql.DB

	// Repository layer (direct database access)
	repo database.DataStore

	// Metrics is nil unless WithMetrics was given
	Metrics *api.Metrics

	// Service layer (business logic)
	BoardService boardservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(db *sql.DB, opts ...Option) *App {
	cfg := &appConfig{policy: position.Compact}
	for _, opt := range opts {
		opt(cfg)
	}

	repo := database.NewRepository(db)

	svcOpts := []boardservice.Option{
		boardservice.WithPolicy(cfg.policy),
		boardservice.WithOpTimeout(cfg.opTimeout),
		boardservice.WithLogger(cfg.logger),
	}
	if cfg.metrics != nil {
		svcOpts = append(svcOpts, boardservice.WithRecorder(cfg.metrics))
	}

	return &App{
		db:           db,
		repo:         repo,
		Metrics:      cfg.metrics,
		BoardService: boardservice.NewService(repo, svcOpts...),
	}
}

// Open opens the database described by cfg and builds the App on top of it.
// Options from cfg come first, so explicit opts override them.
func Open(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, database.Options{
		Path:        cfg.Database.Path,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	all := append([]Option{
		WithPolicy(cfg.MovePolicy()),
		WithOpTimeout(cfg.Database.OpTimeout),
	}, opts...)

	return New(db, all...), nil
}

// Repo returns the underlying repository for direct database access
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close releases the database handle
func (a *App) Close() error {
	return a.db.Close()
}
