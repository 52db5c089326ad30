package http

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"newsboard/internal/handler/http/pathutil"
	"newsboard/internal/handler/http/responsewriter"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Mount label values.
const (
	mountRoot = "root"
	mountAPI  = "api"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, mount point and status",
		},
		[]string{"method", "route", "mount", "status"},
	)

	// 5ms covers cache hits, 10s a slow upstream with retries.
	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Requests currently being served",
		},
	)

	httpResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Response body size by route",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"route"},
	)
)

// MetricsMiddleware must wrap the ServeMux directly: the route label is the
// pattern the mux matched, so /news/{id} and /api/news/{id} share one series
// and unmatched paths fall back to pathutil.NormalizePath.
func MetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		rw := responsewriter.Wrap(w)
		start := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start).Seconds()

		route := routeLabel(r)
		mount := mountRoot
		if r.URL.Path == pathutil.APIPrefix || strings.HasPrefix(r.URL.Path, pathutil.APIPrefix+"/") {
			mount = mountAPI
		}

		httpRequestsTotal.WithLabelValues(r.Method, route, mount, strconv.Itoa(rw.StatusCode())).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route).Observe(elapsed)
		httpResponseSize.WithLabelValues(route).Observe(float64(rw.BytesWritten()))
	})
}

// routeLabel strips the method and the /api mount from r.Pattern,
// e.g. "GET /api/news/{id}" becomes "/news/{id}".
func routeLabel(r *http.Request) string {
	if r.Pattern == "" {
		return pathutil.NormalizePath(r.URL.Path)
	}
	route := r.Pattern
	if i := strings.IndexByte(route, ' '); i >= 0 {
		route = route[i+1:]
	}
	if trimmed := strings.TrimPrefix(route, pathutil.APIPrefix); trimmed != route && strings.HasPrefix(trimmed, "/") {
		route = trimmed
	}
	return route
}

// MetricsHandler serves the Prometheus exposition format.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
