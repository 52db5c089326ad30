// Package newsprovider contains the news sources behind news.Provider:
// a fixed in-memory set and an RSS/Atom feed adapter.
package newsprovider

import (
	"context"
	"fmt"

	"newsboard/internal/domain/entity"
)

// StaticProvider serves a fixed set of news records. It never fails.
type StaticProvider struct {
	items   []entity.NewsItem
	details map[string]entity.NewsDetail
}

// NewStaticProvider returns a provider over the built-in sample records.
// Only some items have a detail record; the rest are not found on Get.
func NewStaticProvider() *StaticProvider {
	return NewStaticProviderWith(sampleItems(), sampleDetails())
}

// NewStaticProviderWith returns a provider over the given records.
func NewStaticProviderWith(items []entity.NewsItem, details []entity.NewsDetail) *StaticProvider {
	p := &StaticProvider{
		items:   append([]entity.NewsItem(nil), items...),
		details: make(map[string]entity.NewsDetail, len(details)),
	}
	for _, d := range details {
		p.details[d.ID] = d
	}
	return p
}

// List returns a copy of every item in order.
func (p *StaticProvider) List(_ context.Context) ([]entity.NewsItem, error) {
	return append([]entity.NewsItem(nil), p.items...), nil
}

// Get returns the detail record for id.
func (p *StaticProvider) Get(_ context.Context, id string) (*entity.NewsDetail, error) {
	d, ok := p.details[id]
	if !ok {
		return nil, fmt.Errorf("news %q: %w", id, entity.ErrNotFound)
	}
	d.Tags = append([]string(nil), d.Tags...)
	return &d, nil
}
