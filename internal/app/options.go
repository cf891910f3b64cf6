package app

import (
	"log/slog"
	"time"

	"github.com/thenoetrevino/kanban/internal/api"
	"github.com/thenoetrevino/kanban/internal/position"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger    *slog.Logger
	policy    position.Policy
	opTimeout time.Duration
	metrics   *api.Metrics
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithPolicy sets how card moves treat positions
func WithPolicy(p position.Policy) Option {
	return func(cfg *appConfig) {
		cfg.policy = p
	}
}

// WithOpTimeout bounds every board operation
func WithOpTimeout(d time.Duration) Option {
	return func(cfg *appConfig) {
		cfg.opTimeout = d
	}
}

// WithMetrics records board operations into m
func WithMetrics(m *api.Metrics) Option {
	return func(cfg *appConfig) {
		cfg.metrics = m
	}
}
