// Package metrics provides Prometheus metrics for the hand evaluation service.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Manager owns a private registry and the service's collectors.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	evaluations        *prometheus.CounterVec
	evaluationDuration prometheus.Histogram
	rejections         *prometheus.CounterVec
	recommendations    *prometheus.CounterVec
	batchSize          prometheus.Histogram
	showdowns          prometheus.Counter

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	wsConnections       prometheus.Gauge
}

// NewManager creates a metrics manager with its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "oddside",
		histogramBuckets: []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05},
		registry:         prometheus.NewRegistry(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.evaluations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "evaluations_total",
		Help:      "Hands evaluated, by resulting category",
	}, []string{"category"})

	m.evaluationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "evaluation_duration_seconds",
		Help:      "Time spent parsing and evaluating one request",
		Buckets:   m.histogramBuckets,
	})

	m.rejections = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "evaluation_rejections_total",
		Help:      "Requests answered with an error payload, by reason",
	}, []string{"reason"})

	m.recommendations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "recommendations_total",
		Help:      "Action recommendations issued, by action",
	}, []string{"action"})

	m.batchSize = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "batch_size",
		Help:      "Number of requests per batch call",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	})

	m.showdowns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "showdowns_total",
		Help:      "Showdowns ranked",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request duration",
		Buckets:   prometheus.DefBuckets,
	}, []string{"endpoint", "method"})

	m.wsConnections = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Name:      "websocket_connections",
		Help:      "Currently open websocket connections",
	})
}

// RecordEvaluation counts a successful evaluation and its duration.
func (m *Manager) RecordEvaluation(category string, d time.Duration) {
	m.evaluations.WithLabelValues(category).Inc()
	m.evaluationDuration.Observe(d.Seconds())
}

// RecordRejection counts a request answered with an error payload.
func (m *Manager) RecordRejection(reason string) {
	m.rejections.WithLabelValues(reason).Inc()
}

// RecordRecommendation counts an issued recommendation.
func (m *Manager) RecordRecommendation(action string) {
	m.recommendations.WithLabelValues(action).Inc()
}

// RecordBatch observes the size of a batch call.
func (m *Manager) RecordBatch(size int) {
	m.batchSize.Observe(float64(size))
}

// RecordShowdown counts a ranked showdown.
func (m *Manager) RecordShowdown() {
	m.showdowns.Inc()
}

// RecordHTTPRequest counts a served HTTP request.
func (m *Manager) RecordHTTPRequest(endpoint, method string, status int, d time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(d.Seconds())
}

// SetWebsocketConnections records the number of open websocket connections.
func (m *Manager) SetWebsocketConnections(n int) {
	m.wsConnections.Set(float64(n))
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
