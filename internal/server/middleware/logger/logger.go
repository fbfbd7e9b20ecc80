// Package logger provides the request-logging middleware.
package logger

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/atlanticdynamic/hellolynx/internal/server/middleware/requestid"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	attrMethod    = "method"
	attrPath      = "path"
	attrQuery     = "query"
	attrStatus    = "status"
	attrDuration  = "duration"
	attrClientIP  = "client_ip"
	attrRequestID = "request_id"
	attrBodySize  = "body_size"

	logMessage = "HTTP request"
)

// lgr is implemented by slog.Logger
type lgr interface {
	LogAttrs(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr)
}

// RequestLogger writes one log line per request after the handler has run.
type RequestLogger struct {
	logger lgr
	now    func() time.Time
}

// New creates a request logger writing to logger. A nil logger uses the default.
func New(logger *slog.Logger) *RequestLogger {
	if logger == nil {
		logger = slog.Default().WithGroup("http")
	}
	return &RequestLogger{logger: logger, now: time.Now}
}

// Middleware returns the middleware function
func (rl *RequestLogger) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		start := rl.now()

		// process the other middleware, and the endpoint handler
		rp.Next()

		r := rp.Request()
		rw := rp.Writer()
		attrs := buildAttrs(r, rw, rl.now().Sub(start))
		rl.logger.LogAttrs(r.Context(), levelFor(rw.Status()), logMessage, attrs...)
	}
}

func buildAttrs(r *http.Request, rw httpserver.ResponseWriter, duration time.Duration) []slog.Attr {
	status := rw.Status()
	if status == 0 {
		status = http.StatusOK
	}

	attrs := make([]slog.Attr, 0, 8)
	attrs = append(attrs,
		slog.String(attrMethod, r.Method),
		slog.String(attrPath, r.URL.Path),
		slog.Int(attrStatus, status),
		slog.Duration(attrDuration, duration),
		slog.String(attrClientIP, clientIP(r)),
		slog.Int(attrBodySize, rw.Size()),
	)
	if r.URL.RawQuery != "" {
		attrs = append(attrs, slog.String(attrQuery, r.URL.RawQuery))
	}
	if id := rw.Header().Get(requestid.Header); id != "" {
		attrs = append(attrs, slog.String(attrRequestID, id))
	}
	return attrs
}

// levelFor picks the log level from the response status
func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// clientIP extracts the client IP from proxy headers or the remote address
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
