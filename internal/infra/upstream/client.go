// Package upstream is the HTTP client for the third-party weather, poetry and
// wallpaper APIs. Every call goes through the same pipeline:
//
//	cache → singleflight → retry → circuit breaker → rate limiter → HTTP
//
// Envelopes are checked here and data payloads are handed on as raw JSON, so
// fields the proxy does not interpret reach clients exactly as sent. The one
// polymorphic field, weatherDesc, is normalized before it leaves this package.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/observability/metrics"
	"newsboard/internal/observability/tracing"
	"newsboard/internal/resilience/circuitbreaker"
	"newsboard/internal/resilience/retry"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Provider names, used in errors, metrics, spans and breaker names.
const (
	ProviderWeather   = "weather"
	ProviderPoetry    = "poetry"
	ProviderWallpaper = "wallpaper"
)

// Client calls the upstream APIs. It is safe for concurrent use.
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger

	limiters map[string]*rate.Limiter // by upstream host
	breakers map[string]*circuitbreaker.CircuitBreaker
	retry    retry.Config

	group singleflight.Group
	cache *gocache.Cache // nil when disabled

	mu sync.RWMutex // guards limiters for hosts added after construction
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the logger used for upstream diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a client from cfg. cfg is expected to be validated.
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     slog.Default(),
		limiters:   make(map[string]*rate.Limiter),
		breakers:   make(map[string]*circuitbreaker.CircuitBreaker),
		retry:      retry.UpstreamAPIConfig("upstream", cfg.RetryMaxAttempts),
	}
	for _, opt := range opts {
		opt(c)
	}

	for _, ep := range cfg.endpoints() {
		if cfg.BreakerEnabled {
			bc := circuitbreaker.UpstreamAPIConfig(ep.provider)
			bc.Logger = c.logger
			bc.IsSuccessful = func(err error) bool {
				// a caller hanging up says nothing about upstream health
				return err == nil || errors.Is(err, context.Canceled)
			}
			bc.OnStateChange = func(name string, _, to gobreaker.State) {
				metrics.SetCircuitState(name, int(to))
			}
			c.breakers[ep.provider] = circuitbreaker.New(bc)
			metrics.SetCircuitState(ep.provider, int(gobreaker.StateClosed))
		}
		if u, err := url.Parse(ep.url); err == nil {
			c.limiterFor(u.Host)
		}
	}

	if cfg.CacheTTL > 0 {
		c.cache = gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	}

	return c
}

// BreakerStates reports the state of every circuit breaker by provider.
// It is empty when breaking is disabled.
func (c *Client) BreakerStates() map[string]string {
	states := make(map[string]string, len(c.breakers))
	for name, cb := range c.breakers {
		states[name] = cb.State().String()
	}
	return states
}

// Endpoints returns the configured endpoint of each provider, without credentials.
func (c *Client) Endpoints() map[string]string {
	out := make(map[string]string, 3)
	for _, ep := range c.cfg.endpoints() {
		out[ep.provider] = ep.url
	}
	return out
}

type request struct {
	provider string
	endpoint string
	query    url.Values // never contains the API key
}

func (r request) key() string {
	return r.provider + "?" + r.query.Encode()
}

// fetchJSON runs the pipeline for req, decodes the body into T and lets check
// reject well-formed failure envelopes. Only checked payloads are cached.
func fetchJSON[T any](ctx context.Context, c *Client, req request, check func(*T) error) (_ *T, err error) {
	start := time.Now()
	ctx, span := tracing.StartClientSpan(ctx, "upstream "+req.provider,
		attribute.String("upstream.provider", req.provider),
		attribute.String("upstream.endpoint", req.endpoint),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if body, ok := c.cached(req); ok {
		var out T
		if jsonErr := json.Unmarshal(body, &out); jsonErr == nil {
			span.SetAttributes(attribute.Bool("upstream.cache_hit", true))
			metrics.RecordUpstreamRequest(req.provider, metrics.OutcomeSuccess, time.Since(start))
			return &out, nil
		}
	}

	body, err := c.fetch(ctx, req)
	if err != nil {
		outcome := metrics.OutcomeTransportError
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			outcome = metrics.OutcomeCircuitOpen
		}
		metrics.RecordUpstreamRequest(req.provider, outcome, time.Since(start))
		return nil, unavailable(req.provider, err)
	}

	var out T
	if err = json.Unmarshal(body, &out); err != nil {
		metrics.RecordUpstreamRequest(req.provider, metrics.OutcomeTransportError, time.Since(start))
		return nil, unavailable(req.provider, fmt.Errorf("decode response: %w", err))
	}

	if err = check(&out); err != nil {
		outcome := metrics.OutcomeUpstreamError
		if errors.Is(err, entity.ErrUpstreamUnavailable) {
			outcome = metrics.OutcomeTransportError
		}
		metrics.RecordUpstreamRequest(req.provider, outcome, time.Since(start))
		return nil, err
	}

	c.store(req, body)
	metrics.RecordUpstreamRequest(req.provider, metrics.OutcomeSuccess, time.Since(start))
	return &out, nil
}

func unavailable(provider string, err error) error {
	return fmt.Errorf("%s upstream: %w: %w", provider, entity.ErrUpstreamUnavailable, err)
}

func (c *Client) cached(req request) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}
	v, ok := c.cache.Get(req.key())
	metrics.RecordCacheLookup(req.provider, ok)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	return body, ok
}

func (c *Client) store(req request, body []byte) {
	if c.cache == nil {
		return
	}
	c.cache.Set(req.key(), body, gocache.DefaultExpiration)
}

// fetch collapses concurrent identical requests into one upstream call.
// The shared call is detached from any single caller's cancellation; each
// caller still stops waiting when its own context ends.
func (c *Client) fetch(ctx context.Context, req request) ([]byte, error) {
	ch := c.group.DoChan(req.key(), func() (interface{}, error) {
		return c.fetchWithRetry(context.WithoutCancel(ctx), req)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.([]byte), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) fetchWithRetry(ctx context.Context, req request) ([]byte, error) {
	rc := c.retry
	rc.Name = req.provider
	rc.Logger = c.logger

	var body []byte
	err := retry.WithBackoff(ctx, rc, func() error {
		res, err := circuitbreaker.Run(c.breakers[req.provider], func() ([]byte, error) {
			return c.do(ctx, req)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				c.logger.Warn("upstream circuit breaker open, request rejected",
					slog.String("provider", req.provider))
			}
			return err
		}
		body = res
		return nil
	})
	return body, err
}

func (c *Client) do(ctx context.Context, req request) ([]byte, error) {
	u, err := url.Parse(req.endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}

	if err := c.throttle(ctx, req.provider, u.Host); err != nil {
		return nil, err
	}

	q := u.Query()
	q.Set("key", c.cfg.APIKey)
	for k, vs := range req.query {
		q[k] = vs
	}
	u.RawQuery = q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// *url.Error embeds the full URL, API key included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return nil, fmt.Errorf("GET %s: %w", req.endpoint, urlErr.Err)
		}
		return nil, fmt.Errorf("GET %s: %w", req.endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, &retry.HTTPError{
			StatusCode: resp.StatusCode,
			Message:    resp.Status,
			RetryAfter: retry.ParseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.cfg.MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > c.cfg.MaxBodySize {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.cfg.MaxBodySize)
	}
	return body, nil
}

func (c *Client) throttle(ctx context.Context, provider, host string) error {
	limiter := c.limiterFor(host)
	if limiter == nil {
		return nil
	}

	start := time.Now()
	if err := limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}
	if wait := time.Since(start); wait > time.Millisecond {
		metrics.RecordThrottleWait(provider, wait)
	}
	return nil
}

// limiterFor returns the shared limiter for host, creating it on first use.
// Endpoints on the same host share one budget because they share one key.
func (c *Client) limiterFor(host string) *rate.Limiter {
	if c.cfg.RateLimit <= 0 {
		return nil
	}

	c.mu.RLock()
	l, ok := c.limiters[host]
	c.mu.RUnlock()
	if ok {
		return l
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if l, ok := c.limiters[host]; ok {
		return l
	}
	l = rate.NewLimiter(rate.Limit(c.cfg.RateLimit), c.cfg.RateBurst)
	c.limiters[host] = l
	return l
}
