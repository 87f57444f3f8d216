package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "ewick_ai"

// Upstream outcomes.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Recorder receives request and provider-call observations.
type Recorder interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	ObserveUpstream(model, outcome string, duration time.Duration)
}

// PrometheusRecorder reports metrics using Prometheus primitives.
type PrometheusRecorder struct {
	registry *prometheus.Registry

	requests         *prometheus.CounterVec
	requestDurations *prometheus.HistogramVec
	upstreamCalls    *prometheus.CounterVec
	upstreamLatency  *prometheus.HistogramVec
}

func NewPrometheusRecorder(registry *prometheus.Registry) (*PrometheusRecorder, error) {
	if registry == nil {
		return nil, fmt.Errorf("prometheus registry is nil")
	}

	r := &PrometheusRecorder{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		requestDurations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		upstreamCalls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_calls_total",
			Help:      "Total number of generateContent calls by model and outcome",
		}, []string{"model", "outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_call_duration_seconds",
			Help:      "generateContent latency in seconds",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32},
		}, []string{"model"}),
	}

	for _, collector := range []prometheus.Collector{r.requests, r.requestDurations, r.upstreamCalls, r.upstreamLatency} {
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return r, nil
}

func (r *PrometheusRecorder) ObserveRequest(method, route string, status int, duration time.Duration) {
	r.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.requestDurations.WithLabelValues(route).Observe(duration.Seconds())
}

func (r *PrometheusRecorder) ObserveUpstream(model, outcome string, duration time.Duration) {
	r.upstreamCalls.WithLabelValues(model, outcome).Inc()
	r.upstreamLatency.WithLabelValues(model).Observe(duration.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (r *PrometheusRecorder) Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{}))
}
