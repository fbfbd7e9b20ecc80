package countdown

import (
	"log/slog"
	"time"
)

// Option configures a Countdown.
type Option func(*Countdown)

// WithLogHandler sets a custom slog handler for the Countdown.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Countdown) {
		if handler != nil {
			c.logger = slog.New(handler).WithGroup("countdown")
		}
	}
}

// WithLogger sets the logger for the Countdown.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Countdown) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSleep replaces time.Sleep, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(c *Countdown) {
		if sleep != nil {
			c.sleep = sleep
		}
	}
}
