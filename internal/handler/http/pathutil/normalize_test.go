package pathutil

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "news detail", path: "/news/1", expected: "/news/:id"},
		{name: "news detail with opaque id", path: "/news/abc-def", expected: "/news/:id"},
		{name: "news detail under api prefix", path: "/api/news/2", expected: "/news/:id"},
		{name: "news detail with trailing slash", path: "/news/3/", expected: "/news/:id"},
		{name: "news detail with query", path: "/news/3?ref=home", expected: "/news/:id"},
		{name: "categories stay static", path: "/news/categories", expected: "/news/categories"},
		{name: "categories under api prefix", path: "/api/news/categories", expected: "/news/categories"},
		{name: "news list", path: "/news", expected: "/news"},
		{name: "weather under api prefix", path: "/api/weather", expected: "/weather"},
		{name: "poetry", path: "/poetry", expected: "/poetry"},
		{name: "health", path: "/health", expected: "/health"},
		{name: "root", path: "/", expected: "/"},
		{name: "bare api prefix", path: "/api", expected: "/"},
		{name: "api-like prefix is not stripped", path: "/apikeys", expected: "/apikeys"},
		{name: "unknown nested path", path: "/news/1/comments", expected: "/news/1/comments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    string
		wantErr bool
	}{
		{name: "numeric", value: "1", want: "1"},
		{name: "opaque", value: "abc", want: "abc"},
		{name: "blank", value: "  ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/news/x", nil)
			req.SetPathValue("id", tt.value)

			got, err := PathID(req, "id")
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPatterns(t *testing.T) {
	got := Patterns(http.MethodGet, "/news/{id}")
	want := []string{"GET /news/{id}", "GET /api/news/{id}"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Patterns() = %v, want %v", got, want)
	}
}
