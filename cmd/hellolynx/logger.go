package main

import (
	"log/slog"

	"github.com/atlanticdynamic/hellolynx/internal/config"
	"github.com/atlanticdynamic/hellolynx/internal/logging"
)

// setupLogger installs the default logger from the loaded configuration
func setupLogger(cfg *config.Config) *slog.Logger {
	return logging.SetupLogger(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cfg.LogOutput,
	})
}

// logStartup records the one-line configuration summary at debug level
func logStartup(logger *slog.Logger, cfg *config.Config, version string) {
	logger.Debug("Effective configuration", "config", cfg.Describe(), "version", version)
}
