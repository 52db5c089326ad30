package http

import (
	"net/http"

	"newsboard/internal/handler/http/respond"
)

const (
	maxPathLength  = 2048
	maxQueryLength = 2048

	// URITooLongMessage is returned when the path or query exceeds its limit.
	URITooLongMessage = "请求地址过长"
)

// InputValidation rejects requests whose path or query string is unreasonably
// long. Query parameters are echoed into upstream URLs, so they are bounded here.
func InputValidation() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > maxPathLength || len(r.URL.RawQuery) > maxQueryLength {
				respond.Fail(w, http.StatusRequestURITooLong, URITooLongMessage)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
