// Package countdown delays startup by a fixed number of seconds.
package countdown

import (
	"log/slog"
	"time"
)

// Tick is the length of one countdown step.
const Tick = time.Second

// Countdown blocks the caller for a whole number of seconds, logging once per second.
// It has no cancellation: once started it always runs to completion.
type Countdown struct {
	seconds uint
	logger  *slog.Logger
	sleep   func(time.Duration)
}

// New creates a countdown of the given length.
func New(seconds uint, opts ...Option) *Countdown {
	c := &Countdown{
		seconds: seconds,
		logger:  slog.Default().WithGroup("countdown"),
		sleep:   time.Sleep,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Seconds returns the configured length.
func (c *Countdown) Seconds() uint {
	return c.seconds
}

// Run performs the countdown. With zero seconds it logs that the countdown is
// disabled and returns immediately.
func (c *Countdown) Run() {
	if c.seconds == 0 {
		c.logger.Info("Countdown disabled, starting immediately")
		return
	}

	for remaining := c.seconds; remaining > 0; remaining-- {
		c.logger.Info("Starting in", "seconds", remaining)
		c.sleep(Tick)
	}
	c.logger.Info("Countdown complete")
}
