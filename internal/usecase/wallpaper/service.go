// Package wallpaper provides the daily wallpaper use case.
package wallpaper

import (
	"context"
	"fmt"

	"newsboard/internal/common/queryparam"
	"newsboard/internal/domain/entity"
)

// Fetcher retrieves n wallpapers.
type Fetcher interface {
	Wallpaper(ctx context.Context, n int) (entity.WallpaperSet, error)
}

// Service provides wallpaper use cases.
type Service struct {
	Fetcher Fetcher
}

// ClampCount turns the raw n query value into the image count sent upstream:
// its leading integer clamped to [1, 8], or 1 when it has none.
//
//	ClampCount("3")   // 3
//	ClampCount("3abc") // 3
//	ClampCount("20")  // 8
//	ClampCount("abc") // 1
func ClampCount(raw string) int {
	return clamp(queryparam.IntOr(raw, entity.MinWallpaperCount))
}

func clamp(n int) int {
	return max(entity.MinWallpaperCount, min(entity.MaxWallpaperCount, n))
}

// Latest returns the n most recent wallpapers; n is clamped to [1, 8].
func (s *Service) Latest(ctx context.Context, n int) (entity.WallpaperSet, error) {
	set, err := s.Fetcher.Wallpaper(ctx, clamp(n))
	if err != nil {
		return entity.WallpaperSet{}, fmt.Errorf("fetch wallpaper: %w", err)
	}
	return set, nil
}
