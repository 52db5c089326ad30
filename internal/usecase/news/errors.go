// Package news provides the news list, detail and category use cases on top
// of a pluggable Provider.
package news

import "errors"

// Sentinel errors for news use case operations.
var (
	// ErrInvalidNewsID indicates an empty or blank news ID.
	ErrInvalidNewsID = errors.New("invalid news ID")
)
