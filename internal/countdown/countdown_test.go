package countdown

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSleeper struct {
	calls []time.Duration
}

func (r *recordingSleeper) sleep(d time.Duration) {
	r.calls = append(r.calls, d)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCountdown_Disabled(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sleeper := &recordingSleeper{}
	c := New(0, WithLogger(newTestLogger(buf)), WithSleep(sleeper.sleep))

	c.Run()

	assert.Empty(t, sleeper.calls)
	assert.Contains(t, buf.String(), "Countdown disabled")
	assert.NotContains(t, buf.String(), "Starting in")
}

func TestCountdown_CountsDown(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	sleeper := &recordingSleeper{}
	c := New(3, WithLogger(newTestLogger(buf)), WithSleep(sleeper.sleep))
	require.Equal(t, uint(3), c.Seconds())

	c.Run()

	assert.Equal(t, []time.Duration{time.Second, time.Second, time.Second}, sleeper.calls)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "seconds=3")
	assert.Contains(t, lines[1], "seconds=2")
	assert.Contains(t, lines[2], "seconds=1")
	assert.Contains(t, lines[3], "Countdown complete")
}

func TestCountdown_RealTime(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping real-time countdown in short mode")
	}
	t.Parallel()

	buf := &bytes.Buffer{}
	c := New(1, WithLogger(newTestLogger(buf)))

	start := time.Now()
	c.Run()

	assert.GreaterOrEqual(t, time.Since(start), time.Second)
	assert.Contains(t, buf.String(), "Countdown complete")
}

func TestOptions(t *testing.T) {
	t.Parallel()

	t.Run("nil values keep defaults", func(t *testing.T) {
		t.Parallel()

		c := New(1, WithLogger(nil), WithLogHandler(nil), WithSleep(nil))
		assert.NotNil(t, c.logger)
		assert.NotNil(t, c.sleep)
	})

	t.Run("log handler groups output", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		c := New(0, WithLogHandler(slog.NewTextHandler(buf, nil)))
		c.Run()
		assert.Contains(t, buf.String(), "Countdown disabled")
	})
}
