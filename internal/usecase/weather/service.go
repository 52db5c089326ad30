// Package weather provides the current-weather use case.
package weather

import (
	"context"
	"fmt"

	"newsboard/internal/domain/entity"
)

// DefaultCity is used when neither the request nor the configuration names one.
const DefaultCity = "Shenzhen"

// Fetcher retrieves a weather observation for a city.
type Fetcher interface {
	Weather(ctx context.Context, city string) (entity.WeatherSnapshot, error)
}

// Service provides weather use cases.
type Service struct {
	Fetcher     Fetcher
	DefaultCity string
}

// Current returns the observation for city, or for the default city when
// city is empty. Upstream errors are returned wrapped.
func (s *Service) Current(ctx context.Context, city string) (entity.WeatherSnapshot, error) {
	if city == "" {
		city = s.defaultCity()
	}

	snapshot, err := s.Fetcher.Weather(ctx, city)
	if err != nil {
		return entity.WeatherSnapshot{}, fmt.Errorf("fetch weather for %q: %w", city, err)
	}
	return snapshot, nil
}

func (s *Service) defaultCity() string {
	if s.DefaultCity == "" {
		return DefaultCity
	}
	return s.DefaultCity
}
