package upstream

import (
	"errors"
	"fmt"
	"time"

	"newsboard/internal/domain/entity"
	pkgconfig "newsboard/pkg/config"
)

// Config holds everything the upstream client needs. It is built by the
// application config loader; no endpoint or key is compiled in.
type Config struct {
	APIKey string

	WeatherURL   string
	PoetryURL    string
	WallpaperURL string

	// Timeout bounds one HTTP attempt.
	Timeout time.Duration

	// RetryMaxAttempts of 1 disables retries.
	RetryMaxAttempts int

	// RateLimit is requests per second per upstream host; 0 disables throttling.
	RateLimit float64
	RateBurst int

	// CacheTTL of 0 disables the response cache.
	CacheTTL time.Duration

	BreakerEnabled bool

	// MaxBodySize caps upstream response bodies, in bytes.
	MaxBodySize int64

	UserAgent string
}

// DefaultConfig returns defaults for everything except the key and endpoints.
func DefaultConfig() Config {
	return Config{
		Timeout:          10 * time.Second,
		RetryMaxAttempts: 1,
		RateLimit:        5,
		RateBurst:        10,
		CacheTTL:         0,
		BreakerEnabled:   true,
		MaxBodySize:      2 << 20,
		UserAgent:        "NewsboardBot/1.0",
	}
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.APIKey == "" {
		errs = append(errs, &entity.ValidationError{Field: "APIKey", Message: "is required"})
	}
	for _, ep := range c.endpoints() {
		if err := entity.ValidateEndpointURL(ep.field, ep.url); err != nil {
			errs = append(errs, err)
		}
	}
	if err := pkgconfig.ValidatePositiveDuration(c.Timeout); err != nil {
		errs = append(errs, fmt.Errorf("Timeout: %w", err))
	}
	if err := pkgconfig.ValidateNonNegativeDuration(c.CacheTTL); err != nil {
		errs = append(errs, fmt.Errorf("CacheTTL: %w", err))
	}
	if c.RetryMaxAttempts < 1 || c.RetryMaxAttempts > 10 {
		errs = append(errs, &entity.ValidationError{Field: "RetryMaxAttempts", Message: "must be between 1 and 10"})
	}
	if c.RateLimit < 0 {
		errs = append(errs, &entity.ValidationError{Field: "RateLimit", Message: "must not be negative"})
	}
	if c.RateLimit > 0 && c.RateBurst < 1 {
		errs = append(errs, &entity.ValidationError{Field: "RateBurst", Message: "must be at least 1 when throttling is enabled"})
	}
	if c.MaxBodySize <= 0 {
		errs = append(errs, &entity.ValidationError{Field: "MaxBodySize", Message: "must be positive"})
	}

	return errors.Join(errs...)
}

type endpoint struct {
	provider string
	field    string
	url      string
}

func (c Config) endpoints() []endpoint {
	return []endpoint{
		{provider: ProviderWeather, field: "WeatherURL", url: c.WeatherURL},
		{provider: ProviderPoetry, field: "PoetryURL", url: c.PoetryURL},
		{provider: ProviderWallpaper, field: "WallpaperURL", url: c.WallpaperURL},
	}
}
