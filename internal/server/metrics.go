package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors of the avatar server. Each
// instance owns its registry so tests can create as many as they need.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	fetchDuration   prometheus.Histogram
	fetchErrors     prometheus.Counter
}

// NewMetrics creates and registers the collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "avatar_requests_total",
			Help: "Avatar requests by endpoint and status code.",
		}, []string{"endpoint", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "avatar_request_duration_seconds",
			Help:    "Time spent serving avatar requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "avatar_texture_fetch_duration_seconds",
			Help:    "Time spent downloading textures.",
			Buckets: prometheus.DefBuckets,
		}),
		fetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "avatar_texture_fetch_errors_total",
			Help: "Texture downloads that failed.",
		}),
	}

	m.registry.MustRegister(
		m.requests,
		m.requestDuration,
		m.fetchDuration,
		m.fetchErrors,
		collectors.NewGoCollector(),
	)
	return m
}

// Instrument records count, status and latency of h under endpoint.
func (m *Metrics) Instrument(endpoint string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := newStatusRecorder(w)
		h(rec, r)

		m.requests.WithLabelValues(endpoint, strconv.Itoa(rec.status)).Inc()
		m.requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
}

// ObserveFetch records a texture download. It matches texture.Observer.
func (m *Metrics) ObserveFetch(d time.Duration, err error) {
	m.fetchDuration.Observe(d.Seconds())
	if err != nil {
		m.fetchErrors.Inc()
	}
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
