// Package resilience groups the fault tolerance helpers used around upstream calls.
//
// Subpackages:
//   - circuitbreaker: gobreaker wrapper with per-upstream presets
//   - retry: exponential backoff with jitter for transient failures
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.UpstreamAPIConfig("weather"))
//	body, err := circuitbreaker.Run(cb, func() ([]byte, error) {
//	    return fetchWeather(ctx, city)
//	})
//
//	err := retry.WithBackoff(ctx, retry.UpstreamAPIConfig("weather", 3), func() error {
//	    return performOperation()
//	})
package resilience
