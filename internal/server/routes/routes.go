// Package routes holds the fixed route table served by the HTTP listener.
package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	BannerBody = "hellolynx is running. Try GET /hello or GET /health.\n"
	HelloBody  = "Hello, World!"
	HealthBody = "OK"

	// UnmatchedID labels requests that no route matched.
	UnmatchedID = "unmatched"

	contentType = "text/plain; charset=utf-8"
)

// Route maps an exact path to a constant response body.
type Route struct {
	ID      string
	Path    string
	Body    string
	Methods []string
}

func (r Route) allows(method string) bool {
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Table is an ordered list of routes. The first route whose path matches wins;
// paths nobody matches get the standard library's not-found response.
type Table struct {
	routes []Route
	logger *slog.Logger
}

// Default returns the three routes the service exposes.
func Default(logger *slog.Logger) *Table {
	return NewTable(logger,
		Route{ID: "root", Path: "/", Body: BannerBody},
		Route{ID: "hello", Path: "/hello", Body: HelloBody},
		Route{ID: "health", Path: "/health", Body: HealthBody},
	)
}

// NewTable builds a table from routes. Routes without methods accept GET and HEAD.
func NewTable(logger *slog.Logger, routes ...Route) *Table {
	if logger == nil {
		logger = slog.Default().WithGroup("routes")
	}

	rs := make([]Route, len(routes))
	for i, r := range routes {
		if len(r.Methods) == 0 {
			r.Methods = []string{http.MethodGet, http.MethodHead}
		}
		rs[i] = r
	}
	return &Table{routes: rs, logger: logger}
}

// Routes returns a copy of the table's routes in match order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Match returns the first route whose path equals the request path.
func (t *Table) Match(path string) (Route, bool) {
	for _, r := range t.routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// RouteID returns the ID of the route that serves req, or UnmatchedID.
func (t *Table) RouteID(req *http.Request) string {
	if r, ok := t.Match(req.URL.Path); ok {
		return r.ID
	}
	return UnmatchedID
}

// ServeHTTP dispatches the request to the first matching route.
func (t *Table) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	route, ok := t.Match(req.URL.Path)
	if !ok {
		http.NotFound(w, req)
		return
	}
	if !route.allows(req.Method) {
		w.Header().Set("Allow", strings.Join(route.Methods, ", "))
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	t.respond(w, req, route)
}

func (t *Table) respond(w http.ResponseWriter, req *http.Request, route Route) {
	t.logger.Info("Endpoint hit", "endpoint", route.Path)
	t.logger.Debug("Serving fixed response",
		"route", route.ID,
		"method", req.Method,
		"bytes", len(route.Body))

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodHead {
		return
	}
	if _, err := w.Write([]byte(route.Body)); err != nil {
		t.logger.Debug("Failed to write response", "route", route.ID, "error", err)
	}
}

// HTTPServerRoutes wraps the table in a single catch-all go-supervisor route,
// so that matching stays in table order instead of the mux's longest-prefix order.
func (t *Table) HTTPServerRoutes(middlewares ...httpserver.HandlerFunc) ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc("routes", "/", t.ServeHTTP, middlewares...)
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}
	return []httpserver.Route{*route}, nil
}
