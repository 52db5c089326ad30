// Package poetry provides the poem-of-the-day use case.
package poetry

import (
	"context"
	"fmt"

	"newsboard/internal/domain/entity"
)

// Fetcher retrieves the poem of the day.
type Fetcher interface {
	Poetry(ctx context.Context) (entity.PoetryEntry, error)
}

// Service provides poetry use cases.
type Service struct {
	Fetcher Fetcher
}

// Today returns the current poem of the day.
func (s *Service) Today(ctx context.Context) (entity.PoetryEntry, error) {
	entry, err := s.Fetcher.Poetry(ctx)
	if err != nil {
		return entity.PoetryEntry{}, fmt.Errorf("fetch poetry: %w", err)
	}
	return entry, nil
}
