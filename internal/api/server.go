// Package api exposes the board service over HTTP with gin.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"
)

const defaultShutdownTimeout = 10 * time.Second

// ServerOptions configures the HTTP listener
type ServerOptions struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ShutdownTimeout   time.Duration
}

// Server represents the HTTP API server
type Server struct {
	httpServer      *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error
}

// NewServer binds the listen address and prepares the server. Binding early
// surfaces port conflicts before the caller commits to serving.
func NewServer(opts ServerOptions, handler http.Handler) (*Server, error) {
	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "tcp", opts.Addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", opts.Addr, err)
	}

	shutdownTimeout := opts.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: opts.ReadHeaderTimeout,
		},
		listener:        listener,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Addr returns the bound address, useful when listening on port 0
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start serves requests until ctx is cancelled, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	slog.Info("http server listening", "addr", s.Addr())

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		slog.Info("http server context cancelled, shutting down")
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	}

	return s.Shutdown()
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		s.shutdownErr = s.httpServer.Shutdown(ctx)
		// Shutdown only closes listeners that Serve has seen
		if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) && s.shutdownErr == nil {
			s.shutdownErr = err
		}
	})
	return s.shutdownErr
}
