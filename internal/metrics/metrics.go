package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	upstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weather_upstream_request_duration_seconds",
			Help:    "Histogram of round-trip times for provider requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weather_upstream_requests_total",
			Help: "Provider requests by endpoint and outcome status (0 = transport failure).",
		},
		[]string{"endpoint", "status"},
	)

	registerOnce sync.Once
)

// Register adds the collectors to the default registry. Safe to call more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(upstreamDuration)
		prometheus.MustRegister(upstreamRequests)
	})
}

// ObserveUpstream records one provider call.
func ObserveUpstream(endpoint string, status int, seconds float64) {
	upstreamDuration.WithLabelValues(endpoint).Observe(seconds)
	upstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
