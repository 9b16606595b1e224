package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "geocoder"

// Исходы запросов к апстриму для UpstreamRequests
const (
	OutcomeSuccess     = "success"
	OutcomeEmpty       = "empty"
	OutcomeStatusError = "status_error"
	OutcomeError       = "error"
)

// Metrics - коллекторы Prometheus сервиса
type Metrics struct {
	UpstreamRequests *prometheus.CounterVec   // labels: operation={search,search_near,reverse}, outcome
	UpstreamDuration *prometheus.HistogramVec // labels: operation
	CacheLookups     *prometheus.CounterVec   // labels: operation, result={hit,miss,error}
	HTTPRequests     *prometheus.CounterVec   // labels: method, route, status

	registry *prometheus.Registry
}

// NewMetrics создает коллекторы и регистрирует их в отдельном registry
// вместе с коллекторами Go runtime и процесса.
func NewMetrics() *Metrics {
	m := &Metrics{
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Upstream geocoder requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Upstream geocoder request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"operation"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Response cache lookups by operation and result.",
		}, []string{"operation", "result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Inbound HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		registry: prometheus.NewRegistry(),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.CacheLookups,
		m.HTTPRequests,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry - registry метрик, в основном для тестов
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
