// Package metrics exposes Prometheus instrumentation for the disruption
// service. A single Metrics value is created at startup and shared by the
// HTTP layer and the provider adapter; a nil *Metrics is safe to use and
// records nothing, which keeps tests free of registry setup.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/labstack/echo/v4"
)

// Metrics holds the service's Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	providerCalls    *prometheus.CounterVec
	providerFailures *prometheus.CounterVec
	alternatives     prometheus.Histogram
}

// New creates a Metrics with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autorescue_http_requests_total",
			Help: "HTTP requests by method, path and status code.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "autorescue_http_request_duration_seconds",
			Help:    "HTTP request latency by path.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path"}),
		providerCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autorescue_provider_calls_total",
			Help: "Outbound provider calls by provider name.",
		}, []string{"provider"}),
		providerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "autorescue_provider_failures_total",
			Help: "Failed outbound provider calls by provider name.",
		}, []string{"provider"}),
		alternatives: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "autorescue_alternatives_found",
			Help:    "Alternatives found per disruption analysis.",
			Buckets: []float64{0, 1, 2, 5, 10, 20},
		}),
	}

	m.registry.MustRegister(
		m.httpRequests,
		m.httpDuration,
		m.providerCalls,
		m.providerFailures,
		m.alternatives,
	)
	return m
}

// Handler returns the /metrics HTTP handler for this registry.
func (m *Metrics) Handler() echo.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return echo.WrapHandler(h)
}

// Middleware returns echo middleware recording request counts and latency.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if m == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			path := c.Path()
			m.httpRequests.WithLabelValues(
				c.Request().Method,
				path,
				strconv.Itoa(c.Response().Status),
			).Inc()
			m.httpDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
			return nil
		}
	}
}

// ObserveProviderCall records one outbound provider call.
func (m *Metrics) ObserveProviderCall(provider string, err error) {
	if m == nil {
		return
	}
	m.providerCalls.WithLabelValues(provider).Inc()
	if err != nil {
		m.providerFailures.WithLabelValues(provider).Inc()
	}
}

// ObserveAlternatives records the alternative count of one analysis.
func (m *Metrics) ObserveAlternatives(count int) {
	if m == nil {
		return
	}
	m.alternatives.Observe(float64(count))
}
