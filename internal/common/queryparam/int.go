// Package queryparam parses loosely-typed query string values.
package queryparam

import (
	"strconv"
	"strings"
)

// LeadingInt parses the optional sign and leading decimal digits of s,
// ignoring leading whitespace and anything after the digits:
// "3" → 3, " 12px" → 12, "-2" → -2, "3.9" → 3.
// ok is false when s has no leading digits ("", "abc", "-").
func LeadingInt(s string) (n int, ok bool) {
	s = strings.TrimLeft(s, " \t\n\r")

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of int range: saturate in the direction of the sign.
		if s[0] == '-' {
			return minInt, true
		}
		return maxInt, true
	}
	return v, true
}

// IntOr returns LeadingInt(s) or def when s has no leading digits.
func IntOr(s string, def int) int {
	if n, ok := LeadingInt(s); ok {
		return n
	}
	return def
}

const (
	maxInt = int(^uint(0) >> 1)
	minInt = -maxInt - 1
)
