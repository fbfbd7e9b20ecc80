package httpserver

import "log/slog"

// Option configures an HTTPServer.
type Option func(*HTTPServer)

// WithLogHandler sets a custom slog handler for the server.
func WithLogHandler(handler slog.Handler) Option {
	return func(s *HTTPServer) {
		if handler != nil {
			s.logger = slog.New(handler).WithGroup("httpserver").With("id", s.id)
		}
	}
}

// WithLogger sets the logger for the server.
func WithLogger(logger *slog.Logger) Option {
	return func(s *HTTPServer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

