// Package config reads typed settings from environment variables and holds
// the validators shared by configuration loaders.
//
// An unset or blank variable yields the caller's default. A variable that is
// set but does not parse also yields the default, with a warning logged so a
// typo in a deployment manifest shows up without stopping the process.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// parsed looks up key and converts it with parse. kind names the expected
// type in the warning.
func parsed[T any](key string, def T, kind string, parse func(string) (T, error)) T {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("ignoring malformed environment variable",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("want", kind),
			slog.Any("default", def))
		return def
	}
	return v
}

// GetEnvString returns the raw value of key, untrimmed, or def.
//
//	city := GetEnvString("WEATHER_DEFAULT_CITY", "Shenzhen")
func GetEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses key as a base-10 int.
func GetEnvInt(key string, def int) int {
	return parsed(key, def, "integer", strconv.Atoi)
}

// GetEnvFloat parses key as a float64, e.g. UPSTREAM_RATE_LIMIT=0.5.
func GetEnvFloat(key string, def float64) float64 {
	return parsed(key, def, "float", func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// GetEnvBool accepts what strconv.ParseBool accepts: 1/0, t/f, true/false
// in any of the usual cases.
func GetEnvBool(key string, def bool) bool {
	return parsed(key, def, "boolean", strconv.ParseBool)
}

// GetEnvDuration parses key with time.ParseDuration ("10s", "1m30s").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	return parsed(key, def, "duration", time.ParseDuration)
}

// GetEnvStringList splits key on commas, trimming entries and dropping empty
// ones. def is returned when nothing is left.
//
//	// CORS_ALLOWED_ORIGINS="https://a.example, https://b.example"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", []string{"*"})
func GetEnvStringList(key string, def []string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
