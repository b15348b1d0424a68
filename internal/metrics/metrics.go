// Package metrics exposes Prometheus instruments for the proxy and AI gateways.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kitten"

// Metrics owns a private registry so tests can build isolated instances.
//
// Metrics:
//   - kitten_proxy_requests_total: proxy requests by result
//   - kitten_proxy_upstream_duration_seconds: upstream response latency by host
//   - kitten_ai_attempts_total: provider attempts by model and outcome
//   - kitten_ai_requests_total: gateway calls by operation and result
//   - kitten_http_requests_total: served HTTP requests by method and status
type Metrics struct {
	registry *prometheus.Registry

	proxyRequests    *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	aiAttempts       *prometheus.CounterVec
	aiRequests       *prometheus.CounterVec
	httpRequests     *prometheus.CounterVec
}

// New creates and registers every instrument. If registry is nil a new one is
// created with the Go and process collectors attached.
func New(registry *prometheus.Registry) *Metrics {
	if registry == nil {
		registry = prometheus.NewRegistry()
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m := &Metrics{
		registry: registry,
		proxyRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "proxy",
				Name:      "requests_total",
				Help:      "Total proxy requests by result",
			},
			[]string{"result"},
		),
		upstreamDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "proxy",
				Name:      "upstream_duration_seconds",
				Help:      "Time until upstream response headers arrived",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20},
			},
			[]string{"host"},
		),
		aiAttempts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ai",
				Name:      "attempts_total",
				Help:      "Provider attempts by model and outcome",
			},
			[]string{"model", "outcome"},
		),
		aiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ai",
				Name:      "requests_total",
				Help:      "AI gateway calls by operation and result",
			},
			[]string{"operation", "result"},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Served HTTP requests by method and status code",
			},
			[]string{"method", "status"},
		),
	}

	registry.MustRegister(
		m.proxyRequests,
		m.upstreamDuration,
		m.aiAttempts,
		m.aiRequests,
		m.httpRequests,
	)
	return m
}

// Registry returns the registry the instruments are registered with.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ProxyRequest counts one proxy request. result is a short label such as
// "ok", "denied" or "quota_exceeded".
func (m *Metrics) ProxyRequest(result string) {
	if m == nil {
		return
	}
	m.proxyRequests.WithLabelValues(result).Inc()
}

// UpstreamLatency observes the time an upstream took to answer.
func (m *Metrics) UpstreamLatency(host string, d time.Duration) {
	if m == nil {
		return
	}
	m.upstreamDuration.WithLabelValues(host).Observe(d.Seconds())
}

// AIAttempt counts one provider call for model.
func (m *Metrics) AIAttempt(model, outcome string) {
	if m == nil {
		return
	}
	m.aiAttempts.WithLabelValues(model, outcome).Inc()
}

// AIRequest counts one gateway operation.
func (m *Metrics) AIRequest(operation, result string) {
	if m == nil {
		return
	}
	m.aiRequests.WithLabelValues(operation, result).Inc()
}

// HTTPRequest counts one served request.
func (m *Metrics) HTTPRequest(method string, status int) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
		ErrorHandling:     promhttp.ContinueOnError,
	})
}
