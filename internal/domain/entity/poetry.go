package entity

import "encoding/json"

// PoetryEntry is the "poem of the day". Payload is the upstream record
// exactly as received; ID and Content are read from it for logs.
type PoetryEntry struct {
	ID      string
	Content string
	Payload json.RawMessage
}
