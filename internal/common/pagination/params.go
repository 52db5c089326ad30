// Package pagination slices in-memory result sets into page/pageSize pages
// and parses those parameters from the query string.
package pagination

import (
	"net/url"

	"newsboard/internal/common/queryparam"
)

// Query parameter names.
const (
	PageParam     = "page"
	PageSizeParam = "pageSize"
)

// Config bounds the page size. Pages always default to 1.
type Config struct {
	DefaultPageSize int
	MaxPageSize     int // 0 means uncapped
}

// DefaultConfig is pageSize 10, capped at 100.
func DefaultConfig() Config {
	return Config{DefaultPageSize: 10, MaxPageSize: 100}
}

// Params is a 1-based page request.
type Params struct {
	Page     int
	PageSize int
}

// Parse reads page and pageSize from q. It never fails: each value uses its
// leading integer ("2abc" is 2), and a missing, non-numeric or non-positive
// value takes its default. pageSize above cfg.MaxPageSize is capped.
func Parse(q url.Values, cfg Config) Params {
	p := Params{
		Page:     queryparam.IntOr(q.Get(PageParam), 1),
		PageSize: queryparam.IntOr(q.Get(PageSizeParam), cfg.DefaultPageSize),
	}
	return p.normalize(cfg)
}

func (p Params) normalize(cfg Config) Params {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = cfg.DefaultPageSize
	}
	if cfg.MaxPageSize > 0 {
		p.PageSize = min(p.PageSize, cfg.MaxPageSize)
	}
	return p
}
