// Package circuitbreaker guards upstream calls with github.com/sony/gobreaker.
package circuitbreaker

import (
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// Config holds the configuration for a circuit breaker.
type Config struct {
	// Name identifies the breaker in logs and metrics.
	Name string

	// MaxRequests is how many trial calls the half-open state lets through.
	MaxRequests uint32

	// Interval clears the closed-state counts periodically; 0 never clears.
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open.
	Timeout time.Duration

	// FailureThreshold is the failure ratio (0.0 to 1.0) that trips the breaker
	// once MinRequests calls have been counted.
	FailureThreshold float64
	MinRequests      uint32

	// IsSuccessful classifies an error returned by the guarded call.
	// Returning true records a success even though the call failed, which
	// keeps well-formed upstream rejections from tripping the breaker.
	// Nil counts every non-nil error as a failure.
	IsSuccessful func(err error) bool

	// OnStateChange is invoked after every transition, in addition to the log record.
	OnStateChange func(name string, from, to gobreaker.State)

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// UpstreamAPIConfig is the preset for the JSON data APIs behind weather,
// poetry and wallpaper. They are latency sensitive, so the breaker
// recovers quickly.
func UpstreamAPIConfig(name string) Config {
	return Config{
		Name:             name,
		MaxRequests:      2,
		Interval:         30 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// FeedFetchConfig is the preset for RSS/Atom news feed downloads.
func FeedFetchConfig() Config {
	return Config{
		Name:             "news-feed",
		MaxRequests:      5,
		Interval:         60 * time.Second,
		Timeout:          120 * time.Second,
		FailureThreshold: 0.7,
		MinRequests:      10,
	}
}

// ContentExtractConfig is the preset for article page downloads. Pages
// come from many hosts, so one breaker only guards against a broken network.
func ContentExtractConfig() Config {
	return Config{
		Name:             "content-extract",
		MaxRequests:      5,
		Interval:         60 * time.Second,
		Timeout:          60 * time.Second,
		FailureThreshold: 0.6,
		MinRequests:      5,
	}
}

// CircuitBreaker wraps gobreaker.CircuitBreaker. A nil *CircuitBreaker is
// valid and runs every call directly, which is how breaking is disabled.
type CircuitBreaker struct {
	breaker *gobreaker.CircuitBreaker
	name    string
}

// New creates a circuit breaker from cfg.
func New(cfg Config) *CircuitBreaker {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name:         cfg.Name,
		MaxRequests:  cfg.MaxRequests,
		Interval:     cfg.Interval,
		Timeout:      cfg.Timeout,
		IsSuccessful: cfg.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				slog.String("circuit", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()))
			if cfg.OnStateChange != nil {
				cfg.OnStateChange(name, from, to)
			}
		},
	}

	return &CircuitBreaker{
		breaker: gobreaker.NewCircuitBreaker(settings),
		name:    cfg.Name,
	}
}

// Execute runs fn through the breaker. When the breaker is open it returns
// gobreaker.ErrOpenState without calling fn; when half-open and saturated
// it returns gobreaker.ErrTooManyRequests.
func (cb *CircuitBreaker) Execute(fn func() (interface{}, error)) (interface{}, error) {
	if cb == nil {
		return fn()
	}
	return cb.breaker.Execute(fn)
}

// Run is Execute with a typed result.
func Run[T any](cb *CircuitBreaker, fn func() (T, error)) (T, error) {
	res, err := cb.Execute(func() (interface{}, error) {
		return fn()
	})
	var v T
	if err != nil {
		return v, err
	}
	v, _ = res.(T)
	return v, nil
}

// State returns the current state. A disabled breaker always reports closed.
func (cb *CircuitBreaker) State() gobreaker.State {
	if cb == nil {
		return gobreaker.StateClosed
	}
	return cb.breaker.State()
}

// Name returns the breaker name, or "" for a disabled breaker.
func (cb *CircuitBreaker) Name() string {
	if cb == nil {
		return ""
	}
	return cb.name
}
