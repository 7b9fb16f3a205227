package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder instruments outbound API calls with Prometheus collectors.
// A nil Recorder is valid and records nothing.
type Recorder struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewRecorder registers the core collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jupiterp_api_requests_total",
		Help: "Total number of Jupiterp API requests issued",
	}, []string{"endpoint", "status"})

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jupiterp_api_request_duration_seconds",
		Help:    "Duration of Jupiterp API requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint"})

	registry.MustRegister(requestTotal, requestDuration)

	return &Recorder{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
	}
}

// ObserveRequest records one completed API call.
func (r *Recorder) ObserveRequest(endpoint string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.requestTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	r.requestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// Registry exposes the underlying registry for callers embedding these
// metrics into a wider collection.
func (r *Recorder) Registry() *prometheus.Registry {
	if r == nil {
		return nil
	}
	return r.registry
}

// Handler returns an HTTP handler serving the recorded metrics.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return http.NotFoundHandler()
	}
	return r.handler
}
