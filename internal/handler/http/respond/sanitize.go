package respond

import "regexp"

// maskRules are applied in order. Each keeps the capture groups named in
// repl and replaces the secret with ****.
var maskRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	// ?key=..., &token=... inside a URL, or key=... at the start of a raw query
	{regexp.MustCompile(`(?i)((?:^|[?&])(?:key|apikey|api_key|token|access_token)=)[^&\s"]+`), "${1}****"},
	// "key":"..." echoed back in an upstream JSON body
	{regexp.MustCompile(`(?i)("(?:key|apikey|api_key|token)"\s*:\s*")[^"]*(")`), "${1}****${2}"},
	{regexp.MustCompile(`(?i)(bearer\s+)[a-z0-9._~+/=-]+`), "${1}****"},
	// user:password@ in a feed URL
	{regexp.MustCompile(`://([^:/@\s]+):([^@/\s]+)@`), "://$1:****@"},
}

// SanitizeError returns err's message with credentials masked, or "" for nil.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return SanitizeString(err.Error())
}

// SanitizeString masks credentials in s.
func SanitizeString(s string) string {
	for _, r := range maskRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}
