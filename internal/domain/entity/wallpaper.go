package entity

import "encoding/json"

// Bounds of the wallpaper image count accepted by the upstream.
const (
	MinWallpaperCount = 1
	MaxWallpaperCount = 8
)

// WallpaperSet is a batch of wallpaper images, newest first. Payload is the
// upstream data object exactly as received.
type WallpaperSet struct {
	Count   int
	Payload json.RawMessage
}
