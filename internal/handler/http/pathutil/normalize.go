// Package pathutil maps request paths onto route templates for metric labels.
package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern pairs a compiled matcher with the template it collapses into.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// Evaluated in order; static routes that share a prefix with a dynamic one
// must come first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/news/categories$`), Template: "/news/categories"},
	{Pattern: regexp.MustCompile(`^/news/[^/]+$`), Template: "/news/:id"},
}

// NormalizePath converts a request path into a bounded set of label values.
// The /api prefix, query strings and trailing slashes are stripped first.
//
//	NormalizePath("/news/42")              // "/news/:id"
//	NormalizePath("/api/news/abc?x=1")     // "/news/:id"
//	NormalizePath("/news/categories")      // "/news/categories"
//	NormalizePath("/api/weather")          // "/weather"
//	NormalizePath("/health")               // "/health"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if path == APIPrefix {
		return "/"
	}
	path = strings.TrimPrefix(path, APIPrefix+"/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}

	return path
}
