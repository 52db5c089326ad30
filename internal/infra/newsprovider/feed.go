package newsprovider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/observability/metrics"
	"newsboard/internal/resilience/circuitbreaker"
	"newsboard/internal/resilience/retry"

	"github.com/google/uuid"
	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/sony/gobreaker"
	"golang.org/x/sync/singleflight"
)

const displayTimeLayout = "2006-01-02 15:04"

// FeedConfig configures a FeedProvider.
type FeedConfig struct {
	URL string

	// RefreshInterval is how long a downloaded feed is served before the next download.
	RefreshInterval time.Duration

	// MaxItems caps the number of items kept from the feed; 0 keeps all.
	MaxItems int

	Timeout   time.Duration
	UserAgent string

	// ExtractContent fetches the article page on Get and extracts its body.
	ExtractContent bool
}

// DefaultFeedConfig returns defaults for everything except URL.
func DefaultFeedConfig() FeedConfig {
	return FeedConfig{
		RefreshInterval: 5 * time.Minute,
		MaxItems:        100,
		Timeout:         15 * time.Second,
		UserAgent:       "NewsboardBot/1.0",
		ExtractContent:  true,
	}
}

// FeedProvider serves news from an RSS or Atom feed.
type FeedProvider struct {
	cfg       FeedConfig
	client    *http.Client
	breaker   *circuitbreaker.CircuitBreaker
	retry     retry.Config
	extractor *ContentExtractor // nil when extraction is off
	logger    *slog.Logger
	now       func() time.Time

	group     singleflight.Group
	mu        sync.RWMutex
	entries   []feedEntry
	fetchedAt time.Time
}

type feedEntry struct {
	item    entity.NewsItem
	link    string
	content string // feed-provided body, used when extraction fails
	tags    []string
}

// FeedOption customizes a FeedProvider.
type FeedOption func(*FeedProvider)

// WithFeedHTTPClient replaces the client used to download the feed.
func WithFeedHTTPClient(hc *http.Client) FeedOption {
	return func(p *FeedProvider) { p.client = hc }
}

// WithContentExtractor replaces the article extractor.
func WithContentExtractor(e *ContentExtractor) FeedOption {
	return func(p *FeedProvider) { p.extractor = e }
}

// WithFeedLogger sets the logger.
func WithFeedLogger(logger *slog.Logger) FeedOption {
	return func(p *FeedProvider) { p.logger = logger }
}

// NewFeedProvider creates a provider for cfg.URL. Nothing is downloaded
// until the first List or Get.
func NewFeedProvider(cfg FeedConfig, opts ...FeedOption) *FeedProvider {
	p := &FeedProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
		retry:  retry.FeedFetchConfig(),
		logger: slog.Default(),
		now:    time.Now,
	}
	if cfg.ExtractContent {
		p.extractor = NewContentExtractor(DefaultExtractorConfig())
	}
	for _, opt := range opts {
		opt(p)
	}

	bc := circuitbreaker.FeedFetchConfig()
	bc.Logger = p.logger
	p.breaker = circuitbreaker.New(bc)
	return p
}

// List returns the feed items in feed order.
func (p *FeedProvider) List(ctx context.Context) ([]entity.NewsItem, error) {
	entries, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.NewsItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.item)
	}
	return items, nil
}

// Get returns the item with id. Content is extracted from the article page
// when possible and falls back to the body carried by the feed.
func (p *FeedProvider) Get(ctx context.Context, id string) (*entity.NewsDetail, error) {
	entries, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, e := range entries {
		if e.item.ID != id {
			continue
		}
		return &entity.NewsDetail{
			NewsItem: e.item,
			Content:  p.content(ctx, e),
			Tags:     append([]string(nil), e.tags...),
		}, nil
	}
	return nil, fmt.Errorf("news %q: %w", id, entity.ErrNotFound)
}

// Categories returns the distinct item categories in first-seen order, or
// the default list when the feed carries none.
func (p *FeedProvider) Categories(ctx context.Context) ([]string, error) {
	entries, err := p.load(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var categories []string
	for _, e := range entries {
		if c := e.item.Category; c != "" && !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	if len(categories) == 0 {
		return append([]string(nil), entity.DefaultNewsCategories...), nil
	}
	return categories, nil
}

func (p *FeedProvider) content(ctx context.Context, e feedEntry) string {
	if p.extractor == nil || e.link == "" {
		return e.content
	}

	html, err := p.extractor.Extract(ctx, e.link)
	if err != nil {
		metrics.RecordContentExtraction("fallback")
		p.logger.Debug("content extraction failed, using feed content",
			slog.String("url", e.link),
			slog.Any("error", err))
		return e.content
	}
	metrics.RecordContentExtraction("success")
	return html
}

// load returns the cached entries, downloading the feed when they are stale.
// Concurrent callers share one download.
func (p *FeedProvider) load(ctx context.Context) ([]feedEntry, error) {
	p.mu.RLock()
	entries, fetchedAt := p.entries, p.fetchedAt
	p.mu.RUnlock()

	if entries != nil && p.now().Sub(fetchedAt) < p.cfg.RefreshInterval {
		return entries, nil
	}

	// the shared download must not die with the first caller's request
	v, err, _ := p.group.Do("feed", func() (interface{}, error) {
		return p.refresh(context.WithoutCancel(ctx))
	})
	if err != nil {
		if entries != nil {
			p.logger.Warn("feed refresh failed, serving stale items",
				slog.String("url", p.cfg.URL),
				slog.Any("error", err))
			return entries, nil
		}
		return nil, fmt.Errorf("%w: news feed: %w", entity.ErrUpstreamUnavailable, err)
	}
	return v.([]feedEntry), nil
}

func (p *FeedProvider) refresh(ctx context.Context) ([]feedEntry, error) {
	var feed *gofeed.Feed

	rc := p.retry
	rc.Logger = p.logger
	err := retry.WithBackoff(ctx, rc, func() error {
		result, err := circuitbreaker.Run(p.breaker, func() (*gofeed.Feed, error) {
			return p.fetch(ctx)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				p.logger.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("url", p.cfg.URL),
					slog.String("state", p.breaker.State().String()))
			}
			return err
		}
		feed = result
		return nil
	})
	if err != nil {
		metrics.RecordFeedFetch(false, 0)
		return nil, err
	}

	entries := toEntries(feed, p.cfg.MaxItems)
	metrics.RecordFeedFetch(true, len(entries))

	p.mu.Lock()
	p.entries = entries
	p.fetchedAt = p.now()
	p.mu.Unlock()

	return entries, nil
}

func (p *FeedProvider) fetch(ctx context.Context) (*gofeed.Feed, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = p.cfg.UserAgent
	fp.Client = p.client

	feed, err := fp.ParseURLWithContext(p.cfg.URL, ctx)
	if err != nil {
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &retry.HTTPError{StatusCode: httpErr.StatusCode, Message: httpErr.Status}
		}
		return nil, err
	}
	return feed, nil
}

func toEntries(feed *gofeed.Feed, maxItems int) []feedEntry {
	items := feed.Items
	if maxItems > 0 && len(items) > maxItems {
		items = items[:maxItems]
	}

	entries := make([]feedEntry, 0, len(items))
	for _, it := range items {
		body := it.Content
		if body == "" {
			body = it.Description
		}

		summary := it.Description
		if summary == "" {
			summary = it.Content
		}

		var category string
		if len(it.Categories) > 0 {
			category = strings.TrimSpace(it.Categories[0])
		}

		entries = append(entries, feedEntry{
			item: entity.NewsItem{
				ID:       itemID(it),
				Title:    strings.TrimSpace(it.Title),
				Source:   strings.TrimSpace(feed.Title),
				Time:     displayTime(it),
				Image:    itemImage(it),
				URL:      it.Link,
				Category: category,
				Abstract: abstract(summary),
			},
			link:    it.Link,
			content: body,
			tags:    it.Categories,
		})
	}
	return entries
}

// itemID derives a stable id from the item GUID or link, so ids survive refreshes.
func itemID(it *gofeed.Item) string {
	key := it.GUID
	if key == "" {
		key = it.Link
	}
	if key == "" {
		key = it.Title
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(key)).String()
}

func displayTime(it *gofeed.Item) string {
	switch {
	case it.PublishedParsed != nil:
		return it.PublishedParsed.Format(displayTimeLayout)
	case it.UpdatedParsed != nil:
		return it.UpdatedParsed.Format(displayTimeLayout)
	default:
		return it.Published
	}
}

// itemImage picks the item image, enclosure, media extension or first inline <img>, in that order.
func itemImage(it *gofeed.Item) string {
	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}
	for _, enc := range it.Enclosures {
		if enc != nil && strings.HasPrefix(enc.Type, "image/") && enc.URL != "" {
			return enc.URL
		}
	}
	if src := mediaURL(it.Extensions); src != "" {
		return src
	}
	if src := firstImage(it.Description); src != "" {
		return src
	}
	return firstImage(it.Content)
}

func mediaURL(exts ext.Extensions) string {
	media, ok := exts["media"]
	if !ok {
		return ""
	}
	for _, name := range []string{"content", "thumbnail"} {
		for _, e := range media[name] {
			if u := e.Attrs["url"]; u != "" {
				return u
			}
		}
	}
	return ""
}
