// Package middleware holds cross-origin handling and security response headers
// for the public read API.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/cors"
)

// CORSConfig describes the cross-origin policy.
type CORSConfig struct {
	// AllowedOrigins lists permitted origins; "*" allows any origin.
	AllowedOrigins []string

	// MaxAge is how long, in seconds, browsers may cache a preflight result.
	MaxAge int

	// Logger receives rs/cors decision traces when non-nil, at debug level.
	Logger *slog.Logger
}

// DefaultMaxAge is the preflight cache duration used when none is configured.
const DefaultMaxAge = 86400

// ValidateOrigins checks that every entry is "*" or a bare scheme://host[:port].
func ValidateOrigins(origins []string) error {
	if len(origins) == 0 {
		return fmt.Errorf("at least one allowed origin is required")
	}
	for _, origin := range origins {
		if origin == "*" {
			continue
		}

		u, err := url.Parse(origin)
		if err != nil {
			return fmt.Errorf("invalid origin URL '%s': %w", origin, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("origin must use http or https scheme: %s", origin)
		}
		if u.Host == "" {
			return fmt.Errorf("origin must include a host: %s", origin)
		}
		if u.Path != "" || u.RawQuery != "" || u.Fragment != "" || strings.HasSuffix(origin, "/") {
			return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
		}
	}
	return nil
}

// CORS returns middleware that answers preflight requests and sets
// Access-Control-* headers on GET responses. The request and trace id
// headers are exposed so browser clients can report them.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}

	opts := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "X-Trace-Id", "Retry-After"},
		MaxAge:         maxAge,
	}
	if cfg.Logger != nil && cfg.Logger.Enabled(context.Background(), slog.LevelDebug) {
		opts.Debug = true
		opts.Logger = slogPrintf{logger: cfg.Logger}
	}

	return cors.New(opts).Handler
}

// slogPrintf adapts *slog.Logger to the Printf logger rs/cors expects.
type slogPrintf struct {
	logger *slog.Logger
}

func (s slogPrintf) Printf(format string, args ...interface{}) {
	s.logger.Debug(fmt.Sprintf(format, args...), slog.String("component", "cors"))
}
