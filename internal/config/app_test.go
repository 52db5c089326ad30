package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"CONFIG_FILE", "VERSION", "HTTP_ADDR", "HTTP_REQUEST_TIMEOUT",
	"UPSTREAM_API_KEY", "UPSTREAM_BASE_URL", "WEATHER_URL", "POETRY_URL", "WALLPAPER_URL",
	"UPSTREAM_TIMEOUT", "UPSTREAM_RETRY_MAX_ATTEMPTS", "UPSTREAM_RATE_LIMIT", "UPSTREAM_RATE_BURST",
	"UPSTREAM_CACHE_TTL", "UPSTREAM_BREAKER_ENABLED", "WEATHER_DEFAULT_CITY",
	"NEWS_PROVIDER", "NEWS_FEED_URL", "NEWS_FEED_REFRESH_INTERVAL", "NEWS_EXTRACT_CONTENT",
	"PAGINATION_DEFAULT_PAGE_SIZE", "PAGINATION_MAX_PAGE_SIZE", "CORS_ALLOWED_ORIGINS",
	"CSP_ENABLED", "CSP_REPORT_ONLY",
	"RATE_LIMIT_ENABLED", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_TRUST_FORWARDED",
	"PROBE_ENABLED", "PROBE_SCHEDULE",
}

// clearEnv blanks every variable Load reads; empty counts as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "newsboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_API_KEY", "k")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Equal(t, "https://whyta.cn/api/tianqi", cfg.Upstream.WeatherURL)
	assert.Equal(t, "https://whyta.cn/api/shici", cfg.Upstream.PoetryURL)
	assert.Equal(t, "https://whyta.cn/api/bing", cfg.Upstream.WallpaperURL)
	assert.Equal(t, 10*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 1, cfg.Upstream.RetryMaxAttempts)
	assert.InDelta(t, 5.0, cfg.Upstream.RateLimit, 1e-9)
	assert.Equal(t, 10, cfg.Upstream.RateBurst)
	assert.Zero(t, cfg.Upstream.CacheTTL)
	assert.True(t, cfg.Upstream.BreakerEnabled)
	assert.Equal(t, "Shenzhen", cfg.Weather.DefaultCity)
	assert.Equal(t, NewsProviderStatic, cfg.News.Provider)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 100, cfg.Pagination.MaxPageSize)
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Security.CSPEnabled)
	assert.False(t, cfg.Security.CSPReportOnly)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.RateLimit.TrustForwarded)
	assert.True(t, cfg.Probe.Enabled)
	assert.Equal(t, "@every 5m", cfg.Probe.Schedule)
}

func TestLoad_Env(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_API_KEY", "k")
	t.Setenv("UPSTREAM_BASE_URL", "https://api.example.com/v2/")
	t.Setenv("POETRY_URL", "https://poems.example.com/today")
	t.Setenv("UPSTREAM_CACHE_TTL", "1m")
	t.Setenv("UPSTREAM_BREAKER_ENABLED", "false")
	t.Setenv("WEATHER_DEFAULT_CITY", "Beijing")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("PAGINATION_DEFAULT_PAGE_SIZE", "6")
	t.Setenv("CSP_REPORT_ONLY", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v2/tianqi", cfg.Upstream.WeatherURL)
	assert.Equal(t, "https://poems.example.com/today", cfg.Upstream.PoetryURL)
	assert.Equal(t, "https://api.example.com/v2/bing", cfg.Upstream.WallpaperURL)
	assert.Equal(t, time.Minute, cfg.Upstream.CacheTTL)
	assert.False(t, cfg.Upstream.BreakerEnabled)
	assert.Equal(t, "Beijing", cfg.Weather.DefaultCity)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, 6, cfg.PaginationSettings().DefaultPageSize)
	assert.True(t, cfg.Security.CSPReportOnly)
}

func TestLoad_FileThenEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("CONFIG_FILE", writeFile(t, `
version: "1.2.0"
http:
  addr: ":9090"
upstream:
  api_key: from-file
  timeout: 3s
  cache_ttl: 30s
news:
  provider: feed
  feed_url: https://news.example.com/rss
probe:
  enabled: false
`))
	t.Setenv("HTTP_ADDR", ":7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, ":7070", cfg.HTTP.Addr, "env wins over the file")
	assert.Equal(t, "from-file", cfg.Upstream.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Upstream.Timeout)
	assert.Equal(t, 30*time.Second, cfg.UpstreamClientConfig().CacheTTL)
	assert.Equal(t, NewsProviderFeed, cfg.News.Provider)
	assert.Equal(t, "https://news.example.com/rss", cfg.FeedConfig().URL)
	assert.False(t, cfg.Probe.Enabled)
	assert.Equal(t, "Shenzhen", cfg.Weather.DefaultCity, "keys missing from the file keep defaults")
}

func TestLoad_FileErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{name: "missing file", path: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{name: "unknown key", path: func(t *testing.T) string { return writeFile(t, "upstream:\n  apikey: typo\n") }},
		{name: "malformed", path: func(t *testing.T) string { return writeFile(t, "http: [\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("UPSTREAM_API_KEY", "k")
			t.Setenv("CONFIG_FILE", tt.path(t))

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("UPSTREAM_API_KEY", "k")
	t.Setenv("CONFIG_FILE", writeFile(t, ""))

	_, err := Load()
	assert.NoError(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.Upstream.APIKey = "k"
		cfg.deriveEndpoints()
		return cfg
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{name: "missing api key", mutate: func(c *Config) { c.Upstream.APIKey = "" }, wantMsg: "APIKey"},
		{name: "bad weather url", mutate: func(c *Config) { c.Upstream.WeatherURL = "ftp://x" }, wantMsg: "WeatherURL"},
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = " " }, wantMsg: "HTTP_ADDR"},
		{name: "zero request timeout", mutate: func(c *Config) { c.HTTP.RequestTimeout = 0 }, wantMsg: "HTTP_REQUEST_TIMEOUT"},
		{name: "empty default city", mutate: func(c *Config) { c.Weather.DefaultCity = "" }, wantMsg: "WEATHER_DEFAULT_CITY"},
		{name: "unknown provider", mutate: func(c *Config) { c.News.Provider = "db" }, wantMsg: "NEWS_PROVIDER"},
		{name: "feed without url", mutate: func(c *Config) { c.News.Provider = NewsProviderFeed }, wantMsg: "NEWS_FEED_URL"},
		{name: "page size below one", mutate: func(c *Config) { c.Pagination.DefaultPageSize = 0 }, wantMsg: "PAGINATION_DEFAULT_PAGE_SIZE"},
		{name: "max below default", mutate: func(c *Config) { c.Pagination.MaxPageSize = 5 }, wantMsg: "PAGINATION_MAX_PAGE_SIZE"},
		{name: "origin with path", mutate: func(c *Config) { c.CORS.AllowedOrigins = []string{"https://a.example/app"} }, wantMsg: "CORS_ALLOWED_ORIGINS"},
		{name: "zero rps", mutate: func(c *Config) { c.RateLimit.RPS = 0 }, wantMsg: "RATE_LIMIT_RPS"},
		{name: "bad schedule", mutate: func(c *Config) { c.Probe.Schedule = "sometimes" }, wantMsg: "PROBE_SCHEDULE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestValidate_DisabledFeaturesSkipChecks(t *testing.T) {
	cfg := Default()
	cfg.Upstream.APIKey = "k"
	cfg.deriveEndpoints()
	cfg.RateLimit = RateLimitConfig{Enabled: false}
	cfg.Probe = ProbeConfig{Enabled: false, Schedule: "not a schedule"}

	assert.NoError(t, cfg.Validate())
}
