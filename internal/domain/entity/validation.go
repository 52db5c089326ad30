package entity

import (
	"fmt"
	"net"
	"net/url"
)

const maxURLLength = 2048

// ValidateEndpointURL checks that rawURL is a well-formed absolute http(s) URL.
// It performs no DNS resolution and is meant for operator-supplied endpoints.
func ValidateEndpointURL(field, rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: field, Message: "URL is required"}
	}
	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("url must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: field, Message: "URL is invalid"}
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: field, Message: "URL must use http or https scheme"}
	}
	if parsedURL.Host == "" {
		return &ValidationError{Field: field, Message: "URL must have a valid host"}
	}

	return nil
}

// ValidatePublicURL is ValidateEndpointURL plus an SSRF check: URLs whose
// host resolves to a loopback, link-local or private address are rejected.
// It is used for links that come from third-party content (feed items).
func ValidatePublicURL(rawURL string) error {
	if err := ValidateEndpointURL("url", rawURL); err != nil {
		return err
	}

	parsedURL, _ := url.Parse(rawURL)
	ips, err := net.LookupIP(parsedURL.Hostname())
	if err == nil {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return &ValidationError{
					Field:   "url",
					Message: "url cannot point to private network",
				}
			}
		}
	}

	return nil
}

// isPrivateIP reports whether ip is loopback, link-local, or in an RFC 1918 /
// RFC 4193 private range (cloud metadata endpoints are link-local).
func isPrivateIP(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() ||
		ip.IsPrivate() || ip.IsUnspecified()
}
