package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"newsboard/internal/domain/entity"
)

// Wallpaper fetches n daily wallpapers. n must already be clamped to
// [entity.MinWallpaperCount, entity.MaxWallpaperCount]. The data object is
// returned as sent.
func (c *Client) Wallpaper(ctx context.Context, n int) (entity.WallpaperSet, error) {
	req := request{
		provider: ProviderWallpaper,
		endpoint: c.cfg.WallpaperURL,
		query:    url.Values{"n": {strconv.Itoa(n)}},
	}

	env, err := fetchJSON(ctx, c, req, func(env *envelope) error {
		if !env.statusIsNumberOne() {
			return &entity.UpstreamError{Provider: ProviderWallpaper, Status: env.statusText(), Message: env.Message}
		}
		if !env.hasData() {
			return unavailable(ProviderWallpaper, fmt.Errorf("success response without data"))
		}
		return nil
	})
	if err != nil {
		return entity.WallpaperSet{}, err
	}

	var data struct {
		Images []json.RawMessage `json:"images"`
	}
	_ = json.Unmarshal(env.Data, &data)

	return entity.WallpaperSet{Count: len(data.Images), Payload: env.Data}, nil
}
