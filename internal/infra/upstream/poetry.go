package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"newsboard/internal/domain/entity"
)

const poetrySuccessStatus = "success"

// Poetry fetches the poem of the day. The data object is returned as sent.
func (c *Client) Poetry(ctx context.Context) (entity.PoetryEntry, error) {
	req := request{
		provider: ProviderPoetry,
		endpoint: c.cfg.PoetryURL,
		query:    url.Values{},
	}

	env, err := fetchJSON(ctx, c, req, func(env *envelope) error {
		if !env.statusIsString(poetrySuccessStatus) {
			return &entity.UpstreamError{Provider: ProviderPoetry, Status: env.statusText(), Message: env.Warning}
		}
		if !env.hasData() {
			return unavailable(ProviderPoetry, fmt.Errorf("success response without data"))
		}
		return nil
	})
	if err != nil {
		return entity.PoetryEntry{}, err
	}

	var record map[string]json.RawMessage
	// a non-object payload is still proxied, it just has no id to log
	_ = json.Unmarshal(env.Data, &record)

	return entity.PoetryEntry{
		ID:      textField(record, "id"),
		Content: textField(record, "content"),
		Payload: env.Data,
	}, nil
}
