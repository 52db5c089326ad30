package pathutil

import (
	"errors"
	"net/http"
	"strings"
)

// APIPrefix is the secondary mount point of every data route.
const APIPrefix = "/api"

// ErrInvalidID is returned when the path segment carrying an identifier is blank.
var ErrInvalidID = errors.New("invalid id")

// PathID returns the {name} wildcard of a ServeMux pattern, trimmed.
// Identifiers are opaque strings, so only emptiness is rejected.
func PathID(r *http.Request, name string) (string, error) {
	id := strings.TrimSpace(r.PathValue(name))
	if id == "" {
		return "", ErrInvalidID
	}
	return id, nil
}

// Patterns returns the ServeMux patterns that mount path both at the root
// and under APIPrefix, e.g. "GET /news" and "GET /api/news".
func Patterns(method, path string) []string {
	return []string{
		method + " " + path,
		method + " " + APIPrefix + path,
	}
}
