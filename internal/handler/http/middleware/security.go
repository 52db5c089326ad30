package middleware

import (
	"net/http"
	"strings"

	"newsboard/pkg/security/csp"
)

// SwaggerPathPrefix is where the API documentation UI is served.
const SwaggerPathPrefix = "/swagger/"

// SecurityConfig controls the security response headers.
type SecurityConfig struct {
	// CSPEnabled adds a Content-Security-Policy header.
	CSPEnabled bool
	// CSPReportOnly sends the policy as Content-Security-Policy-Report-Only.
	CSPReportOnly bool
}

// SecurityHeaders sets nosniff, frame and referrer headers on every response,
// plus a CSP: a locked-down policy for the JSON API and a looser one for the
// Swagger UI.
func SecurityHeaders(cfg SecurityConfig) func(http.Handler) http.Handler {
	apiPolicy := csp.APIPolicy().Build()
	swaggerPolicy := csp.SwaggerUIPolicy().Build()

	cspHeader := csp.HeaderName
	if cfg.CSPReportOnly {
		cspHeader = csp.ReportOnlyHeaderName
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "no-referrer")

			if cfg.CSPEnabled {
				policy := apiPolicy
				if strings.HasPrefix(r.URL.Path, SwaggerPathPrefix) {
					policy = swaggerPolicy
				}
				h.Set(cspHeader, policy)
			}

			next.ServeHTTP(w, r)
		})
	}
}
