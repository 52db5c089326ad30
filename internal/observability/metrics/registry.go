// Package metrics holds the Prometheus collectors for upstream calls, the
// reachability probe and the feed news provider. HTTP server metrics live
// with the HTTP middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream outcomes, used as the "outcome" label.
const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeCircuitOpen    = "circuit_open"
)

// Upstream metrics track calls to the weather, poetry and wallpaper APIs.
var (
	// UpstreamRequestsTotal counts upstream calls by provider and outcome
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"provider", "outcome"},
	)

	// UpstreamRequestDuration measures end-to-end upstream latency, retries included
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream API call duration in seconds",
			Buckets: []float64{.025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	// UpstreamCacheLookups counts response cache lookups
	UpstreamCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_cache_lookups_total",
			Help: "Upstream response cache lookups by result",
		},
		[]string{"provider", "result"}, // result: hit, miss
	)

	// UpstreamCircuitState is 0 closed, 1 half-open, 2 open
	UpstreamCircuitState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "upstream_circuit_state",
			Help: "Circuit breaker state per upstream (0 closed, 1 half-open, 2 open)",
		},
		[]string{"provider"},
	)

	// UpstreamThrottleWait measures time spent waiting on the outbound rate limiter
	UpstreamThrottleWait = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_throttle_wait_seconds",
			Help:    "Time spent waiting for the outbound rate limiter",
			Buckets: []float64{.001, .01, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"provider"},
	)
)

// Probe metrics are written by the scheduled reachability check.
var (
	// ProbeUp is 1 when the last probe of a target succeeded
	ProbeUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "upstream_probe_up",
			Help: "Whether the last reachability probe of an upstream succeeded",
		},
		[]string{"target"},
	)

	// ProbeDuration measures probe latency
	ProbeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_probe_duration_seconds",
			Help:    "Reachability probe duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"target"},
	)
)

// Feed provider metrics.
var (
	// FeedFetchTotal counts feed downloads by result
	FeedFetchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_feed_fetch_total",
			Help: "Total number of news feed fetches",
		},
		[]string{"result"}, // result: success, failure
	)

	// FeedItems is the number of items in the last parsed feed
	FeedItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_feed_items",
			Help: "Number of items in the most recently fetched news feed",
		},
	)

	// ContentExtractionTotal counts article body extraction attempts
	ContentExtractionTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_content_extraction_total",
			Help: "Article content extraction attempts by result",
		},
		[]string{"result"}, // result: success, failure, fallback
	)
)
