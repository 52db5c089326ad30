package newsprovider

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"newsboard/internal/domain/entity"
	"newsboard/internal/resilience/retry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const feedTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:media="http://search.yahoo.com/mrss/">
<channel>
  <title>Example News</title>
  <link>https://example.com</link>
  <item>
    <title>First story</title>
    <link>{{base}}/articles/1</link>
    <guid>story-1</guid>
    <pubDate>Mon, 15 Jan 2024 10:30:00 +0000</pubDate>
    <category>科技</category>
    <category>AI</category>
    <description><![CDATA[<p>Hello <b>world</b></p><img src="https://img.example.com/1.jpg">]]></description>
  </item>
  <item>
    <title>Second story</title>
    <link>{{base}}/missing</link>
    <guid>story-2</guid>
    <pubDate>Mon, 15 Jan 2024 09:15:00 +0000</pubDate>
    <category>财经</category>
    <enclosure url="https://img.example.com/2.jpg" type="image/jpeg" length="100"/>
    <description>Plain summary</description>
  </item>
  <item>
    <title>Third story</title>
    <link>https://example.org/3</link>
    <guid>story-3</guid>
    <media:content url="https://img.example.com/3.jpg" medium="image"/>
    <description>Third summary</description>
  </item>
</channel>
</rss>`

func articlePage() string {
	para := strings.Repeat("The quick brown fox jumps over the lazy dog while the reporter takes notes. ", 12)
	return `<!DOCTYPE html><html><head><title>First story</title></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>First story</h1>
<p>distinctive-marker ` + para + `</p>
<p>` + para + `</p>
<p>` + para + `</p>
</article>
<footer>footer links</footer>
</body></html>`
}

type feedServer struct {
	*httptest.Server
	feedHits atomic.Int32
	failFeed atomic.Bool
}

func newFeedServer(t *testing.T) *feedServer {
	t.Helper()
	fs := &feedServer{}
	fs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/feed.xml":
			fs.feedHits.Add(1)
			if fs.failFeed.Load() {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = io.WriteString(w, strings.ReplaceAll(feedTemplate, "{{base}}", fs.URL))
		case "/articles/1":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = io.WriteString(w, articlePage())
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.Close)
	return fs
}

func newTestFeedProvider(t *testing.T, fs *feedServer) *FeedProvider {
	t.Helper()
	cfg := DefaultFeedConfig()
	cfg.URL = fs.URL + "/feed.xml"

	extractorCfg := DefaultExtractorConfig()
	extractorCfg.DenyPrivateIPs = false

	p := NewFeedProvider(cfg,
		WithContentExtractor(NewContentExtractor(extractorCfg)),
		WithFeedLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	p.retry = retry.Config{MaxAttempts: 1}
	return p
}

func TestFeedProvider_List(t *testing.T) {
	fs := newFeedServer(t)
	p := newTestFeedProvider(t, fs)

	items, err := p.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	first := items[0]
	assert.Equal(t, uuid.NewSHA1(uuid.NameSpaceURL, []byte("story-1")).String(), first.ID)
	assert.Equal(t, "First story", first.Title)
	assert.Equal(t, "Example News", first.Source)
	assert.Equal(t, "2024-01-15 10:30", first.Time)
	assert.Equal(t, "https://img.example.com/1.jpg", first.Image)
	assert.Equal(t, fs.URL+"/articles/1", first.URL)
	assert.Equal(t, "科技", first.Category)
	assert.Equal(t, "Hello world", first.Abstract)

	assert.Equal(t, "https://img.example.com/2.jpg", items[1].Image, "image enclosure")
	assert.Equal(t, "Plain summary", items[1].Abstract)
	assert.Equal(t, "https://img.example.com/3.jpg", items[2].Image, "media:content")
	assert.Empty(t, items[2].Category)
}

func TestFeedProvider_Get(t *testing.T) {
	fs := newFeedServer(t)
	p := newTestFeedProvider(t, fs)

	items, err := p.List(context.Background())
	require.NoError(t, err)

	t.Run("extracted content", func(t *testing.T) {
		d, err := p.Get(context.Background(), items[0].ID)
		require.NoError(t, err)
		assert.Equal(t, items[0], d.NewsItem)
		assert.Contains(t, d.Content, "distinctive-marker")
		assert.NotContains(t, d.Content, "footer links")
		assert.Equal(t, []string{"科技", "AI"}, d.Tags)
	})

	t.Run("falls back to feed content", func(t *testing.T) {
		d, err := p.Get(context.Background(), items[1].ID)
		require.NoError(t, err)
		assert.Equal(t, "Plain summary", d.Content)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := p.Get(context.Background(), "nope")
		assert.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestFeedProvider_Categories(t *testing.T) {
	fs := newFeedServer(t)
	p := newTestFeedProvider(t, fs)

	got, err := p.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"科技", "财经"}, got)
}

func TestFeedProvider_Refresh(t *testing.T) {
	fs := newFeedServer(t)
	p := newTestFeedProvider(t, fs)

	now := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		_, err := p.List(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), fs.feedHits.Load(), "served from memory within the refresh interval")

	now = now.Add(p.cfg.RefreshInterval)
	_, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), fs.feedHits.Load())

	fs.failFeed.Store(true)
	now = now.Add(p.cfg.RefreshInterval)
	items, err := p.List(context.Background())
	require.NoError(t, err, "stale items are served when a refresh fails")
	assert.Len(t, items, 3)
	assert.Equal(t, int32(3), fs.feedHits.Load())
}

func TestFeedProvider_Unavailable(t *testing.T) {
	fs := newFeedServer(t)
	fs.failFeed.Store(true)
	p := newTestFeedProvider(t, fs)

	_, err := p.List(context.Background())
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)

	_, err = p.Get(context.Background(), "any")
	assert.ErrorIs(t, err, entity.ErrUpstreamUnavailable)
}

func TestFeedProvider_MaxItems(t *testing.T) {
	fs := newFeedServer(t)
	p := newTestFeedProvider(t, fs)
	p.cfg.MaxItems = 2

	items, err := p.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestContentExtractor_RejectsPrivateHosts(t *testing.T) {
	e := NewContentExtractor(DefaultExtractorConfig())

	_, err := e.Extract(context.Background(), "http://127.0.0.1/admin")
	var verr *entity.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = e.Extract(context.Background(), "file:///etc/passwd")
	assert.ErrorAs(t, err, &verr)
}

func TestContentExtractor_BodyLimit(t *testing.T) {
	fs := newFeedServer(t)
	cfg := DefaultExtractorConfig()
	cfg.DenyPrivateIPs = false
	cfg.MaxBodySize = 64

	_, err := NewContentExtractor(cfg).Extract(context.Background(), fs.URL+"/articles/1")
	assert.ErrorIs(t, err, ErrBodyTooLarge)
}
