package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/api"
	"github.com/thenoetrevino/kanban/internal/app"
	"github.com/thenoetrevino/kanban/internal/config"
	"github.com/thenoetrevino/kanban/internal/database"
	"github.com/thenoetrevino/kanban/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "config file (default $KANBAN_CONFIG or the user config directory)")
	flag.Parse()

	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := run(ctx, *configPath); err != nil {
		slog.Error("kanban server error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	closer, err := logging.Init(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	if err != nil {
		return err
	}
	defer func() {
		_ = closer.Close()
	}()

	gin.SetMode(gin.ReleaseMode)

	metrics := api.NewMetrics()
	application, err := app.Open(ctx, cfg,
		app.WithMetrics(metrics),
		app.WithLogger(logging.Logger),
	)
	if err != nil {
		return err
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	board, err := application.BoardService.Bootstrap(ctx)
	if err != nil {
		if errors.Is(err, database.ErrSchema) {
			slog.Error("database schema could not be created", "path", cfg.Database.Path)
		}
		return err
	}

	router := api.NewRouter(application.BoardService, api.RouterOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         logging.Logger,
		Metrics:        metrics,
	})

	server, err := api.NewServer(api.ServerOptions{
		Addr:              cfg.Server.Addr,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
	}, router)
	if err != nil {
		return err
	}

	slog.Info("kanban server starting",
		"addr", server.Addr(),
		"db_path", cfg.Database.Path,
		"default_board", board.ID,
		"move_policy", cfg.Board.MovePolicy,
		"pid", os.Getpid())

	// Blocks until ctx is cancelled
	if err := server.Start(ctx); err != nil {
		return err
	}

	slog.Info("kanban server shut down gracefully")
	return nil
}
