// Package httpserver runs one HTTP listener as a supervised runnable.
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

var (
	_ supervisor.Runnable  = (*HTTPServer)(nil)
	_ supervisor.Stateable = (*HTTPServer)(nil)
	_ supervisor.Readiness = (*HTTPServer)(nil)
)

var (
	ErrEmptyAddress = errors.New("listen address cannot be empty")
	ErrNoRoutes     = errors.New("at least one route is required")
)

// serverImplementation abstracts the go-supervisor runner for tests
type serverImplementation interface {
	Run(ctx context.Context) error
	Stop()
	GetState() string
	IsReady() bool
	GetStateChan(ctx context.Context) <-chan string
}

// HTTPServer wraps the go-supervisor httpserver.Runner with a fixed route set.
// The routes never change after construction.
type HTTPServer struct {
	id      string
	address string
	routes  []httpserver.Route
	logger  *slog.Logger
	server  serverImplementation
}

// New creates an HTTP server listening on address and serving routes.
func New(id, address string, routes []httpserver.Route, opts ...Option) (*HTTPServer, error) {
	if address == "" {
		return nil, ErrEmptyAddress
	}
	if len(routes) == 0 {
		return nil, ErrNoRoutes
	}

	s := &HTTPServer{
		id:      id,
		address: address,
		routes:  routes,
		logger:  slog.Default().WithGroup("httpserver").With("id", id),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.initializeRunner(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return s, nil
}

// initializeRunner creates the underlying httpserver.Runner
func (s *HTTPServer) initializeRunner() error {
	configCallback := func() (*httpserver.Config, error) {
		cfg, err := httpserver.NewConfig(s.address, s.routes)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return cfg, nil
	}

	runner, err := httpserver.NewRunner(
		httpserver.WithConfigCallback(configCallback),
	)
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	s.server = runner
	return nil
}

// String returns a unique identifier for this server
func (s *HTTPServer) String() string {
	return fmt.Sprintf("HTTPServer[%s]", s.id)
}

// Run binds the listener and serves until the context is cancelled or Stop is called.
// A bind failure is returned as an error.
func (s *HTTPServer) Run(ctx context.Context) error {
	s.logger.Info("Starting HTTP server", "address", s.address, "routes", len(s.routes))
	if err := s.server.Run(ctx); err != nil {
		return fmt.Errorf("%s on %s: %w", s, s.address, err)
	}
	return nil
}

// Stop stops the HTTP server
func (s *HTTPServer) Stop() {
	s.logger.Info("Stopping HTTP server", "address", s.address)
	s.server.Stop()
}

// GetState returns the current state of the server
func (s *HTTPServer) GetState() string {
	if s.server == nil {
		return "unknown"
	}
	return s.server.GetState()
}

// IsReady reports whether the listener is bound and serving. The supervisor
// waits on it before starting the next runnable.
func (s *HTTPServer) IsReady() bool {
	if s.server == nil {
		return false
	}
	return s.server.IsReady()
}

// GetStateChan returns a channel that emits state changes
func (s *HTTPServer) GetStateChan(ctx context.Context) <-chan string {
	if s.server == nil {
		ch := make(chan string)
		go func() {
			<-ctx.Done()
			close(ch)
		}()
		return ch
	}
	return s.server.GetStateChan(ctx)
}
