// Package server wires the countdown, route table and listeners together and
// runs them under a go-supervisor process supervisor.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/atlanticdynamic/hellolynx/internal/config"
	"github.com/atlanticdynamic/hellolynx/internal/countdown"
	"github.com/atlanticdynamic/hellolynx/internal/server/httpserver"
	reqlogger "github.com/atlanticdynamic/hellolynx/internal/server/middleware/logger"
	"github.com/atlanticdynamic/hellolynx/internal/server/middleware/metrics"
	"github.com/atlanticdynamic/hellolynx/internal/server/middleware/requestid"
	"github.com/atlanticdynamic/hellolynx/internal/server/routes"
	"github.com/robbyt/go-supervisor/supervisor"
)

const (
	MainListenerID    = "main"
	MetricsListenerID = "metrics"
)

var ErrNilConfig = errors.New("config cannot be nil")

type options struct {
	sleep func(time.Duration)
}

// Option configures Run.
type Option func(*options)

// WithCountdownSleep replaces the sleep used by the startup countdown.
func WithCountdownSleep(sleep func(time.Duration)) Option {
	return func(o *options) {
		o.sleep = sleep
	}
}

// Run blocks for the startup countdown, then serves until ctx is cancelled or
// the process receives a termination signal. Listener failures, including a
// port that cannot be bound, are returned.
func Run(ctx context.Context, logger *slog.Logger, cfg *config.Config, opts ...Option) error {
	if cfg == nil {
		return ErrNilConfig
	}
	if logger == nil {
		logger = slog.Default()
	}
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	for _, fb := range cfg.Fallbacks {
		logger.Debug("Ignoring malformed setting, using default", "name", fb.Name, "value", fb.Value)
	}
	logger.Info("Configuration loaded", "port", cfg.Port, "countdown_seconds", cfg.CountdownSeconds)

	countdown.New(cfg.CountdownSeconds,
		countdown.WithLogger(logger.WithGroup("countdown")),
		countdown.WithSleep(o.sleep),
	).Run()

	runnables, err := buildRunnables(logger, cfg)
	if err != nil {
		return err
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(runnables...),
	)
	if err != nil {
		return fmt.Errorf("failed to create supervisor: %w", err)
	}
	if err := super.Run(); err != nil {
		return fmt.Errorf("failed to run server: %w", err)
	}

	logger.Info("Server shutdown complete")
	return nil
}

// buildRunnables creates the main listener and, when enabled, the metrics listener.
func buildRunnables(logger *slog.Logger, cfg *config.Config) ([]supervisor.Runnable, error) {
	table := routes.Default(logger.WithGroup("routes"))

	m, err := metrics.New(table.RouteID)
	if err != nil {
		return nil, err
	}

	mainRoutes, err := table.HTTPServerRoutes(
		requestid.New().Middleware(),
		reqlogger.New(logger.WithGroup("http")).Middleware(),
		m.Middleware(),
	)
	if err != nil {
		return nil, err
	}

	mainServer, err := httpserver.New(MainListenerID, cfg.ListenAddr(), mainRoutes,
		httpserver.WithLogger(logger.WithGroup("httpserver").With("id", MainListenerID)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	runnables := []supervisor.Runnable{mainServer}

	if cfg.MetricsEnabled() {
		metricsRoutes, err := m.HTTPServerRoutes()
		if err != nil {
			return nil, err
		}
		metricsServer, err := httpserver.New(MetricsListenerID, cfg.MetricsAddr(), metricsRoutes,
			httpserver.WithLogger(logger.WithGroup("httpserver").With("id", MetricsListenerID)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics listener: %w", err)
		}
		runnables = append(runnables, metricsServer)
	}

	return runnables, nil
}
