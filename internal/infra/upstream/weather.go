package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"newsboard/internal/domain/entity"
)

const weatherDescField = "weatherDesc"

// Weather fetches the current observation for city. The record is returned
// with every field as sent except weatherDesc, which is normalized.
//
// A status other than the number 1 is returned as *entity.UpstreamError;
// every other failure wraps entity.ErrUpstreamUnavailable.
func (c *Client) Weather(ctx context.Context, city string) (entity.WeatherSnapshot, error) {
	req := request{
		provider: ProviderWeather,
		endpoint: c.cfg.WeatherURL,
		query:    url.Values{"city": {city}},
	}

	env, err := fetchJSON(ctx, c, req, func(env *envelope) error {
		if !env.statusIsNumberOne() {
			return &entity.UpstreamError{Provider: ProviderWeather, Status: env.statusText(), Message: env.Message}
		}
		if !env.hasData() {
			return unavailable(ProviderWeather, fmt.Errorf("success response without data"))
		}
		if _, err := decodeRecord(env.Data); err != nil {
			return unavailable(ProviderWeather, err)
		}
		return nil
	})
	if err != nil {
		return entity.WeatherSnapshot{}, err
	}

	record, err := decodeRecord(env.Data)
	if err != nil {
		return entity.WeatherSnapshot{}, unavailable(ProviderWeather, err)
	}
	return snapshotFromRecord(record)
}

func decodeRecord(data json.RawMessage) (map[string]json.RawMessage, error) {
	var record map[string]json.RawMessage
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("data is not an object: %w", err)
	}
	return record, nil
}

func snapshotFromRecord(record map[string]json.RawMessage) (entity.WeatherSnapshot, error) {
	var desc WeatherDescription
	if raw, ok := record[weatherDescField]; ok {
		if err := json.Unmarshal(raw, &desc); err != nil {
			return entity.WeatherSnapshot{}, unavailable(ProviderWeather, err)
		}
	}
	record[weatherDescField] = desc.Value()

	return entity.WeatherSnapshot{
		City:           textField(record, "city"),
		Description:    desc.Normalize(),
		WindDir16Point: textField(record, "winddir16Point"),
		Record:         record,
	}, nil
}
