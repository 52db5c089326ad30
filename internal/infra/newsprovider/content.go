package newsprovider

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/resilience/circuitbreaker"

	"github.com/go-shiori/go-readability"
)

// Errors returned by ContentExtractor.
var (
	ErrTooManyRedirects  = errors.New("too many redirects")
	ErrBodyTooLarge      = errors.New("response body too large")
	ErrNoReadableContent = errors.New("no readable content")
)

// ExtractorConfig controls article page fetching.
type ExtractorConfig struct {
	Timeout        time.Duration
	MaxBodySize    int64
	MaxRedirects   int
	DenyPrivateIPs bool
	UserAgent      string
}

// DefaultExtractorConfig returns production settings.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Timeout:        10 * time.Second,
		MaxBodySize:    5 << 20,
		MaxRedirects:   5,
		DenyPrivateIPs: true,
		UserAgent:      "NewsboardBot/1.0",
	}
}

// ContentExtractor downloads an article page and extracts its main content
// as HTML with the Readability algorithm. Links come from third-party feeds,
// so every URL and redirect target is checked against private networks.
//
// ContentExtractor is safe for concurrent use.
type ContentExtractor struct {
	client  *http.Client
	breaker *circuitbreaker.CircuitBreaker
	cfg     ExtractorConfig
}

// NewContentExtractor creates an extractor with its own HTTP client.
func NewContentExtractor(cfg ExtractorConfig) *ContentExtractor {
	e := &ContentExtractor{
		cfg:     cfg,
		breaker: circuitbreaker.New(circuitbreaker.ContentExtractConfig()),
	}

	e.client = &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= e.cfg.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if err := e.validate(req.URL.String()); err != nil {
				return fmt.Errorf("redirect target validation failed: %w", err)
			}
			return nil
		},
	}
	return e
}

func (e *ContentExtractor) validate(rawURL string) error {
	if e.cfg.DenyPrivateIPs {
		return entity.ValidatePublicURL(rawURL)
	}
	return entity.ValidateEndpointURL("url", rawURL)
}

// Extract returns the readable HTML content of the page at rawURL.
func (e *ContentExtractor) Extract(ctx context.Context, rawURL string) (string, error) {
	if err := e.validate(rawURL); err != nil {
		return "", err
	}

	return circuitbreaker.Run(e.breaker, func() (string, error) {
		return e.doExtract(ctx, rawURL)
	})
}

func (e *ContentExtractor) doExtract(ctx context.Context, rawURL string) (string, error) {
	reqCtx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.cfg.UserAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) && urlErr.Err != nil {
			return "", urlErr.Err
		}
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	htmlBytes, err := io.ReadAll(io.LimitReader(resp.Body, e.cfg.MaxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if int64(len(htmlBytes)) > e.cfg.MaxBodySize {
		return "", fmt.Errorf("%w: limit %d bytes", ErrBodyTooLarge, e.cfg.MaxBodySize)
	}

	pageURL := resp.Request.URL
	article, err := readability.FromReader(bytes.NewReader(htmlBytes), pageURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoReadableContent, err)
	}
	if article.Content == "" {
		return "", ErrNoReadableContent
	}
	return article.Content, nil
}
