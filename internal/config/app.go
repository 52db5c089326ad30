// Package config loads the server configuration.
//
// Values come from, in increasing precedence: built-in defaults, an optional
// YAML file named by CONFIG_FILE, and environment variables. The result is
// validated once at startup.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"newsboard/internal/common/pagination"
	"newsboard/internal/domain/entity"
	"newsboard/internal/handler/http/middleware"
	"newsboard/internal/infra/newsprovider"
	"newsboard/internal/infra/upstream"
	pkgconfig "newsboard/pkg/config"
)

// News provider names accepted by NEWS_PROVIDER.
const (
	NewsProviderStatic = "static"
	NewsProviderFeed   = "feed"
)

// DefaultUpstreamBaseURL is the aggregation API the proxies forward to.
const DefaultUpstreamBaseURL = "https://whyta.cn/api"

// Config is the complete server configuration.
type Config struct {
	Version    string           `yaml:"version"`
	HTTP       HTTPConfig       `yaml:"http"`
	Upstream   UpstreamConfig   `yaml:"upstream"`
	Weather    WeatherConfig    `yaml:"weather"`
	News       NewsConfig       `yaml:"news"`
	Pagination PaginationConfig `yaml:"pagination"`
	CORS       CORSConfig       `yaml:"cors"`
	Security   SecurityConfig   `yaml:"security"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
	Probe      ProbeConfig      `yaml:"probe"`
}

// HTTPConfig configures the listener.
type HTTPConfig struct {
	Addr string `yaml:"addr"`
	// RequestTimeout bounds each request; exceeded requests get a 504 envelope.
	RequestTimeout time.Duration `yaml:"request_timeout"`
	// MaxBodyBytes caps request bodies.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`
}

// UpstreamConfig configures the weather, poetry and wallpaper upstream.
// Endpoint URLs left empty are derived from BaseURL.
type UpstreamConfig struct {
	APIKey           string        `yaml:"api_key"`
	BaseURL          string        `yaml:"base_url"`
	WeatherURL       string        `yaml:"weather_url"`
	PoetryURL        string        `yaml:"poetry_url"`
	WallpaperURL     string        `yaml:"wallpaper_url"`
	Timeout          time.Duration `yaml:"timeout"`
	RetryMaxAttempts int           `yaml:"retry_max_attempts"`
	RateLimit        float64       `yaml:"rate_limit"`
	RateBurst        int           `yaml:"rate_burst"`
	CacheTTL         time.Duration `yaml:"cache_ttl"`
	BreakerEnabled   bool          `yaml:"breaker_enabled"`
}

// WeatherConfig configures the weather endpoint.
type WeatherConfig struct {
	DefaultCity string `yaml:"default_city"`
}

// NewsConfig selects and configures the news provider.
type NewsConfig struct {
	Provider        string        `yaml:"provider"`
	FeedURL         string        `yaml:"feed_url"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	ExtractContent  bool          `yaml:"extract_content"`
}

// PaginationConfig configures list endpoints.
type PaginationConfig struct {
	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`
}

// CORSConfig configures cross-origin access.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// SecurityConfig configures security response headers.
type SecurityConfig struct {
	CSPEnabled    bool `yaml:"csp_enabled"`
	CSPReportOnly bool `yaml:"csp_report_only"`
}

// RateLimitConfig configures the inbound per-client limiter.
type RateLimitConfig struct {
	Enabled bool    `yaml:"enabled"`
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	// TrustForwarded honors X-Forwarded-For and X-Real-IP. Enable it only
	// behind a proxy that overwrites those headers.
	TrustForwarded bool `yaml:"trust_forwarded"`
}

// ProbeConfig configures the periodic upstream reachability check.
type ProbeConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Schedule string `yaml:"schedule"`
}

// Default returns the built-in configuration. It is not valid on its own:
// the upstream API key has no default.
func Default() *Config {
	up := upstream.DefaultConfig()
	feed := newsprovider.DefaultFeedConfig()
	page := pagination.DefaultConfig()

	return &Config{
		Version: "dev",
		HTTP: HTTPConfig{
			Addr:           ":8080",
			RequestTimeout: 30 * time.Second,
			MaxBodyBytes:   1 << 20,
		},
		Upstream: UpstreamConfig{
			BaseURL:          DefaultUpstreamBaseURL,
			Timeout:          up.Timeout,
			RetryMaxAttempts: up.RetryMaxAttempts,
			RateLimit:        up.RateLimit,
			RateBurst:        up.RateBurst,
			CacheTTL:         up.CacheTTL,
			BreakerEnabled:   up.BreakerEnabled,
		},
		Weather: WeatherConfig{DefaultCity: "Shenzhen"},
		News: NewsConfig{
			Provider:        NewsProviderStatic,
			RefreshInterval: feed.RefreshInterval,
			ExtractContent:  feed.ExtractContent,
		},
		Pagination: PaginationConfig{
			DefaultPageSize: page.DefaultPageSize,
			MaxPageSize:     page.MaxPageSize,
		},
		CORS:     CORSConfig{AllowedOrigins: []string{"*"}},
		Security: SecurityConfig{CSPEnabled: true},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     10,
			Burst:   20,
		},
		Probe: ProbeConfig{
			Enabled:  true,
			Schedule: "@every 5m",
		},
	}
}

// Load builds the configuration from defaults, CONFIG_FILE and the
// environment, then validates it.
func Load() (*Config, error) {
	cfg := Default()

	if path := pkgconfig.GetEnvString("CONFIG_FILE", ""); path != "" {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	cfg.deriveEndpoints()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyEnv overrides fields with environment variables. The current value
// of each field acts as the default, so file values survive unset variables.
func (c *Config) applyEnv() {
	c.Version = pkgconfig.GetEnvString("VERSION", c.Version)

	c.HTTP.Addr = pkgconfig.GetEnvString("HTTP_ADDR", c.HTTP.Addr)
	c.HTTP.RequestTimeout = pkgconfig.GetEnvDuration("HTTP_REQUEST_TIMEOUT", c.HTTP.RequestTimeout)

	u := &c.Upstream
	u.APIKey = pkgconfig.GetEnvString("UPSTREAM_API_KEY", u.APIKey)
	u.BaseURL = pkgconfig.GetEnvString("UPSTREAM_BASE_URL", u.BaseURL)
	u.WeatherURL = pkgconfig.GetEnvString("WEATHER_URL", u.WeatherURL)
	u.PoetryURL = pkgconfig.GetEnvString("POETRY_URL", u.PoetryURL)
	u.WallpaperURL = pkgconfig.GetEnvString("WALLPAPER_URL", u.WallpaperURL)
	u.Timeout = pkgconfig.GetEnvDuration("UPSTREAM_TIMEOUT", u.Timeout)
	u.RetryMaxAttempts = pkgconfig.GetEnvInt("UPSTREAM_RETRY_MAX_ATTEMPTS", u.RetryMaxAttempts)
	u.RateLimit = pkgconfig.GetEnvFloat("UPSTREAM_RATE_LIMIT", u.RateLimit)
	u.RateBurst = pkgconfig.GetEnvInt("UPSTREAM_RATE_BURST", u.RateBurst)
	u.CacheTTL = pkgconfig.GetEnvDuration("UPSTREAM_CACHE_TTL", u.CacheTTL)
	u.BreakerEnabled = pkgconfig.GetEnvBool("UPSTREAM_BREAKER_ENABLED", u.BreakerEnabled)

	c.Weather.DefaultCity = pkgconfig.GetEnvString("WEATHER_DEFAULT_CITY", c.Weather.DefaultCity)

	c.News.Provider = pkgconfig.GetEnvString("NEWS_PROVIDER", c.News.Provider)
	c.News.FeedURL = pkgconfig.GetEnvString("NEWS_FEED_URL", c.News.FeedURL)
	c.News.RefreshInterval = pkgconfig.GetEnvDuration("NEWS_FEED_REFRESH_INTERVAL", c.News.RefreshInterval)
	c.News.ExtractContent = pkgconfig.GetEnvBool("NEWS_EXTRACT_CONTENT", c.News.ExtractContent)

	c.Pagination.DefaultPageSize = pkgconfig.GetEnvInt("PAGINATION_DEFAULT_PAGE_SIZE", c.Pagination.DefaultPageSize)
	c.Pagination.MaxPageSize = pkgconfig.GetEnvInt("PAGINATION_MAX_PAGE_SIZE", c.Pagination.MaxPageSize)

	c.CORS.AllowedOrigins = pkgconfig.GetEnvStringList("CORS_ALLOWED_ORIGINS", c.CORS.AllowedOrigins)

	c.Security.CSPEnabled = pkgconfig.GetEnvBool("CSP_ENABLED", c.Security.CSPEnabled)
	c.Security.CSPReportOnly = pkgconfig.GetEnvBool("CSP_REPORT_ONLY", c.Security.CSPReportOnly)

	c.RateLimit.Enabled = pkgconfig.GetEnvBool("RATE_LIMIT_ENABLED", c.RateLimit.Enabled)
	c.RateLimit.RPS = pkgconfig.GetEnvFloat("RATE_LIMIT_RPS", c.RateLimit.RPS)
	c.RateLimit.Burst = pkgconfig.GetEnvInt("RATE_LIMIT_BURST", c.RateLimit.Burst)
	c.RateLimit.TrustForwarded = pkgconfig.GetEnvBool("RATE_LIMIT_TRUST_FORWARDED", c.RateLimit.TrustForwarded)

	c.Probe.Enabled = pkgconfig.GetEnvBool("PROBE_ENABLED", c.Probe.Enabled)
	c.Probe.Schedule = pkgconfig.GetEnvString("PROBE_SCHEDULE", c.Probe.Schedule)
}

// deriveEndpoints fills empty endpoint URLs from the base URL.
func (c *Config) deriveEndpoints() {
	base := strings.TrimRight(c.Upstream.BaseURL, "/")
	if c.Upstream.WeatherURL == "" {
		c.Upstream.WeatherURL = base + "/tianqi"
	}
	if c.Upstream.PoetryURL == "" {
		c.Upstream.PoetryURL = base + "/shici"
	}
	if c.Upstream.WallpaperURL == "" {
		c.Upstream.WallpaperURL = base + "/bing"
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, fmt.Errorf("HTTP_ADDR cannot be empty"))
	}
	if err := pkgconfig.ValidatePositiveDuration(c.HTTP.RequestTimeout); err != nil {
		errs = append(errs, fmt.Errorf("HTTP_REQUEST_TIMEOUT: %w", err))
	}
	if c.HTTP.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("http.max_body_bytes must be positive"))
	}

	if err := c.UpstreamClientConfig().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("upstream: %w", err))
	}

	if strings.TrimSpace(c.Weather.DefaultCity) == "" {
		errs = append(errs, fmt.Errorf("WEATHER_DEFAULT_CITY cannot be empty"))
	}

	switch c.News.Provider {
	case NewsProviderStatic:
	case NewsProviderFeed:
		if err := entity.ValidateEndpointURL("NEWS_FEED_URL", c.News.FeedURL); err != nil {
			errs = append(errs, err)
		}
		if err := pkgconfig.ValidatePositiveDuration(c.News.RefreshInterval); err != nil {
			errs = append(errs, fmt.Errorf("NEWS_FEED_REFRESH_INTERVAL: %w", err))
		}
	default:
		errs = append(errs, fmt.Errorf("NEWS_PROVIDER must be %q or %q, got %q",
			NewsProviderStatic, NewsProviderFeed, c.News.Provider))
	}

	if c.Pagination.DefaultPageSize < 1 {
		errs = append(errs, fmt.Errorf("PAGINATION_DEFAULT_PAGE_SIZE must be at least 1"))
	}
	if c.Pagination.MaxPageSize < c.Pagination.DefaultPageSize {
		errs = append(errs, fmt.Errorf("PAGINATION_MAX_PAGE_SIZE must not be below PAGINATION_DEFAULT_PAGE_SIZE"))
	}

	if err := middleware.ValidateOrigins(c.CORS.AllowedOrigins); err != nil {
		errs = append(errs, fmt.Errorf("CORS_ALLOWED_ORIGINS: %w", err))
	}

	if c.RateLimit.Enabled {
		if c.RateLimit.RPS <= 0 {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must be positive"))
		}
		if c.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be at least 1"))
		}
	}

	if c.Probe.Enabled {
		if err := pkgconfig.ValidateCronSchedule(c.Probe.Schedule); err != nil {
			errs = append(errs, fmt.Errorf("PROBE_SCHEDULE: %w", err))
		}
	}

	return errors.Join(errs...)
}

// UpstreamClientConfig converts the upstream settings for upstream.NewClient.
func (c *Config) UpstreamClientConfig() upstream.Config {
	out := upstream.DefaultConfig()
	out.APIKey = c.Upstream.APIKey
	out.WeatherURL = c.Upstream.WeatherURL
	out.PoetryURL = c.Upstream.PoetryURL
	out.WallpaperURL = c.Upstream.WallpaperURL
	out.Timeout = c.Upstream.Timeout
	out.RetryMaxAttempts = c.Upstream.RetryMaxAttempts
	out.RateLimit = c.Upstream.RateLimit
	out.RateBurst = c.Upstream.RateBurst
	out.CacheTTL = c.Upstream.CacheTTL
	out.BreakerEnabled = c.Upstream.BreakerEnabled
	return out
}

// FeedConfig converts the news settings for newsprovider.NewFeedProvider.
func (c *Config) FeedConfig() newsprovider.FeedConfig {
	out := newsprovider.DefaultFeedConfig()
	out.URL = c.News.FeedURL
	out.RefreshInterval = c.News.RefreshInterval
	out.ExtractContent = c.News.ExtractContent
	return out
}

// PaginationSettings converts the pagination settings for list handlers.
func (c *Config) PaginationSettings() pagination.Config {
	out := pagination.DefaultConfig()
	out.DefaultPageSize = c.Pagination.DefaultPageSize
	out.MaxPageSize = c.Pagination.MaxPageSize
	return out
}
