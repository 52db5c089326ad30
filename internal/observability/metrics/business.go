package metrics

import (
	"time"
)

// RecordUpstreamRequest records one upstream call.
//
// Example:
//
//	start := time.Now()
//	err := client.GetJSON(ctx, ...)
//	RecordUpstreamRequest("weather", OutcomeSuccess, time.Since(start))
func RecordUpstreamRequest(provider, outcome string, duration time.Duration) {
	UpstreamRequestsTotal.WithLabelValues(provider, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordCacheLookup records a response cache hit or miss.
func RecordCacheLookup(provider string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	UpstreamCacheLookups.WithLabelValues(provider, result).Inc()
}

// SetCircuitState publishes a breaker state; see UpstreamCircuitState for values.
func SetCircuitState(provider string, state int) {
	UpstreamCircuitState.WithLabelValues(provider).Set(float64(state))
}

// RecordThrottleWait records time spent blocked on the outbound limiter.
func RecordThrottleWait(provider string, wait time.Duration) {
	UpstreamThrottleWait.WithLabelValues(provider).Observe(wait.Seconds())
}

// RecordProbe records the result of one reachability probe.
func RecordProbe(target string, up bool, duration time.Duration) {
	v := 0.0
	if up {
		v = 1
	}
	ProbeUp.WithLabelValues(target).Set(v)
	ProbeDuration.WithLabelValues(target).Observe(duration.Seconds())
}

// RecordFeedFetch records a feed download and, on success, its item count.
func RecordFeedFetch(success bool, items int) {
	if !success {
		FeedFetchTotal.WithLabelValues("failure").Inc()
		return
	}
	FeedFetchTotal.WithLabelValues("success").Inc()
	FeedItems.Set(float64(items))
}

// RecordContentExtraction records an article body extraction.
// result is one of success, failure or fallback.
func RecordContentExtraction(result string) {
	ContentExtractionTotal.WithLabelValues(result).Inc()
}
