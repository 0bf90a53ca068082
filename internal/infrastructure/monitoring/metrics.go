// Package monitoring handles Prometheus metrics collection.
package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a dedicated registry so repeated construction in tests never
// trips duplicate-registration panics. All record methods are nil-safe.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Business metrics
	optimizeDuration prometheus.Histogram
	shoppingOutcomes *prometheus.CounterVec
	aiFallbacksTotal *prometheus.CounterVec
	chatCacheHits    prometheus.Counter
}

// NewMetrics creates the metrics set on a fresh registry, including the
// standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Metrics{
		registry: registry,

		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		optimizeDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "shopping_optimize_duration_seconds",
				Help:    "Store-combination optimization duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		shoppingOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "shopping_lists_total",
				Help: "Shopping list generations by outcome",
			},
			[]string{"outcome"},
		),
		aiFallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ai_fallbacks_total",
				Help: "AI degradations to canned or generic output by stage",
			},
			[]string{"stage"},
		),
		chatCacheHits: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "chat_cache_hits_total",
				Help: "Chat replies served from cache",
			},
		),
	}
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one completed request.
func (m *Metrics) RecordHTTPRequest(method, path, statusCode string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, path, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOptimizeDuration records one optimizer run.
func (m *Metrics) RecordOptimizeDuration(duration time.Duration) {
	if m == nil {
		return
	}
	m.optimizeDuration.Observe(duration.Seconds())
}

// RecordShoppingOutcome counts a list generation by outcome
// (ok, infeasible, recipe_not_found, error).
func (m *Metrics) RecordShoppingOutcome(outcome string) {
	if m == nil {
		return
	}
	m.shoppingOutcomes.WithLabelValues(outcome).Inc()
}

// RecordAIFallback counts a degradation at the given stage (chat, ingredients).
func (m *Metrics) RecordAIFallback(stage string) {
	if m == nil {
		return
	}
	m.aiFallbacksTotal.WithLabelValues(stage).Inc()
}

// RecordChatCacheHit counts a chat reply served from cache.
func (m *Metrics) RecordChatCacheHit() {
	if m == nil {
		return
	}
	m.chatCacheHits.Inc()
}
