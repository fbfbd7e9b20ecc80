// Package metrics records per-route request metrics in a Prometheus registry.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
)

const (
	Namespace = "hellolynx"
	Path      = "/metrics"
)

// RouteLabeler maps a request to the route label used in metrics.
type RouteLabeler func(*http.Request) string

// Metrics holds the request collectors and the registry they are exposed from.
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	routeLabel      RouteLabeler
}

// New creates the collectors and registers them, with the Go and process
// collectors, in a fresh registry.
func New(routeLabel RouteLabeler) (*Metrics, error) {
	if routeLabel == nil {
		routeLabel = func(r *http.Request) string { return r.URL.Path }
	}

	requestCount := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	registry := prometheus.NewRegistry()
	var errs []error
	for _, c := range []prometheus.Collector{
		requestCount,
		requestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := registry.Register(c); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	return &Metrics{
		registry:        registry,
		requestCount:    requestCount,
		requestDuration: requestDuration,
		routeLabel:      routeLabel,
	}, nil
}

// Registry returns the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// HTTPServerRoutes returns the single /metrics route for the metrics listener.
func (m *Metrics) HTTPServerRoutes() ([]httpserver.Route, error) {
	route, err := httpserver.NewRouteFromHandlerFunc("metrics", Path, m.Handler().ServeHTTP)
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics route: %w", err)
	}
	return []httpserver.Route{*route}, nil
}

// Middleware returns the middleware function
func (m *Metrics) Middleware() httpserver.HandlerFunc {
	return func(rp *httpserver.RequestProcessor) {
		start := time.Now()
		rp.Next()

		r := rp.Request()
		status := rp.Writer().Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := m.routeLabel(r)

		m.requestCount.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	}
}
