package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~20s
		},
		[]string{"method", "route", "status"},
	)

	upstreamLatencySeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_latency_seconds",
			Help:    "Latency of upstream calls in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12),
		},
		[]string{"upstream"},
	)

	geocodeLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "geocode_lookups_total",
			Help: "Geocode lookups by resolution tier and outcome.",
		},
		[]string{"tier", "outcome"},
	)

	rateGateWaitSeconds = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "geocode_rate_gate_wait_seconds",
			Help:    "Time spent waiting on the outbound geocoder rate gate.",
			Buckets: prometheus.LinearBuckets(0, 0.1, 11), // 0 to 1s
		},
	)

	cacheOpSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cache_op_duration_seconds",
			Help:    "Duration of shared cache operations in seconds.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		},
		[]string{"op", "ok"},
	)

	estimatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "flight_estimates_total",
			Help: "Completed flight estimates by route class.",
		},
		[]string{"route_class"},
	)

	buildInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_build_info",
			Help: "Build information for the binary.",
		},
		[]string{"version"},
	)
)

func ObserveHTTP(method, route string, status int, durationSeconds float64) {
	st := strconv.Itoa(status)
	httpRequestsTotal.WithLabelValues(method, route, st).Inc()
	httpRequestDurationSeconds.WithLabelValues(method, route, st).Observe(durationSeconds)
}

func ObserveUpstreamLatency(upstream string, durationSeconds float64) {
	upstreamLatencySeconds.WithLabelValues(upstream).Observe(durationSeconds)
}

func IncGeocodeHit(tier string) {
	geocodeLookupsTotal.WithLabelValues(tier, "hit").Inc()
}

func IncGeocodeMiss(tier string) {
	geocodeLookupsTotal.WithLabelValues(tier, "miss").Inc()
}

func ObserveRateGateWait(durationSeconds float64) {
	rateGateWaitSeconds.Observe(durationSeconds)
}

func ObserveCacheOp(op string, err error, durationSeconds float64) {
	ok := "true"
	if err != nil {
		ok = "false"
	}
	cacheOpSeconds.WithLabelValues(op, ok).Observe(durationSeconds)
}

func IncEstimate(routeClass string) {
	estimatesTotal.WithLabelValues(routeClass).Inc()
}

func ExposeBuildInfo(version string) {
	if version == "" {
		version = "dev"
	}
	buildInfo.WithLabelValues(version).Set(1)
}
