// Package logging builds the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/atlanticdynamic/hellolynx/internal/logging/writers"
	"github.com/charmbracelet/log"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options describes how the process logger should be built.
type Options struct {
	Level  string
	Format string
	Output string
}

// SetupHandlerText configures a text slog handler with the provided writer and log level
func SetupHandlerText(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stderr
	}

	reportCaller := false
	reportTimestamp := false
	lvl := log.InfoLevel
	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		reportTimestamp = true
		lvl = log.DebugLevel
	case "debug":
		reportTimestamp = true
		lvl = log.DebugLevel
	case "info":
		lvl = log.InfoLevel
	case "warn", "warning":
		lvl = log.WarnLevel
	case "error":
		lvl = log.ErrorLevel
	}

	return log.NewWithOptions(writer, log.Options{
		ReportTimestamp: reportTimestamp,
		ReportCaller:    reportCaller,
		Level:           lvl,
	})
}

// SetupHandlerJSON configures a JSON slog handler with the provided writer and log level
func SetupHandlerJSON(logLevel string, writer io.Writer) slog.Handler {
	if writer == nil {
		writer = os.Stdout
	}

	reportCaller := false
	var level slog.Level

	switch strings.ToLower(logLevel) {
	case "trace":
		reportCaller = true
		level = slog.LevelDebug
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: reportCaller,
	}

	return slog.NewJSONHandler(writer, opts)
}

// SetupHandler builds a handler for the given options. When the output
// destination cannot be opened it falls back to a plain text handler on
// stderr and returns the error that caused the fallback.
func SetupHandler(opts Options) (slog.Handler, error) {
	output := opts.Output
	if output == "" {
		output = "stderr"
	}

	writer, err := writers.CreateWriter(output)
	if err != nil {
		fallback := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
		return fallback, fmt.Errorf("log output %q unavailable: %w", output, err)
	}

	if strings.ToLower(opts.Format) == FormatJSON {
		return SetupHandlerJSON(opts.Level, writer), nil
	}
	return SetupHandlerText(opts.Level, writer), nil
}

// SetupLogger installs the process-wide default logger and returns it.
// Initialization never fails: a broken output falls back to stderr with a warning.
func SetupLogger(opts Options) *slog.Logger {
	handler, err := SetupHandler(opts)
	logger := slog.New(handler)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, logging to stderr\n", err)
	}
	slog.SetDefault(logger)
	return logger
}
