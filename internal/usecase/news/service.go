package news

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsboard/internal/common/pagination"
	"newsboard/internal/domain/entity"
)

// Provider is a source of news. Get returns an error wrapping
// entity.ErrNotFound for unknown ids.
type Provider interface {
	List(ctx context.Context) ([]entity.NewsItem, error)
	Get(ctx context.Context, id string) (*entity.NewsDetail, error)
}

// CategoryProvider is implemented by providers with their own category list.
type CategoryProvider interface {
	Categories(ctx context.Context) ([]string, error)
}

// ListInput represents the input parameters for listing news.
type ListInput struct {
	Category string // "" or "all" disables filtering
	Params   pagination.Params
}

// Service provides news use cases.
type Service struct {
	Provider Provider
}

// List returns one page of news, optionally filtered by exact category.
// Total counts the filtered items.
func (s *Service) List(ctx context.Context, in ListInput) (pagination.Page[entity.NewsItem], error) {
	items, err := s.Provider.List(ctx)
	if err != nil {
		return pagination.Page[entity.NewsItem]{}, fmt.Errorf("list news: %w", err)
	}

	return pagination.Paginate(FilterByCategory(items, in.Category), in.Params), nil
}

// FilterByCategory keeps items whose category equals category exactly.
// An empty category or entity.AllCategories returns items unchanged.
func FilterByCategory(items []entity.NewsItem, category string) []entity.NewsItem {
	if category == "" || category == entity.AllCategories {
		return items
	}

	filtered := make([]entity.NewsItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Get retrieves a single news record by its ID.
// Returns ErrInvalidNewsID for a blank id and an error wrapping
// entity.ErrNotFound if the record does not exist.
func (s *Service) Get(ctx context.Context, id string) (*entity.NewsDetail, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrInvalidNewsID
	}

	detail, err := s.Provider.Get(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get news: %w", err)
	}
	if detail == nil {
		return nil, fmt.Errorf("news %q: %w", id, entity.ErrNotFound)
	}
	return detail, nil
}

// Categories returns the provider's categories, or the default list when the
// provider has none of its own.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	cp, ok := s.Provider.(CategoryProvider)
	if !ok {
		return append([]string(nil), entity.DefaultNewsCategories...), nil
	}

	categories, err := cp.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
