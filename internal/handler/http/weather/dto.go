// Package weather serves the current-weather endpoint.
package weather

import "newsboard/internal/domain/entity"

// ValueDTO is the {"value": ...} wrapper used by weatherIconUrl.
type ValueDTO struct {
	Value string `json:"value"`
}

// DTO documents the usual weather record: upstream field names, a
// normalized weatherDesc and the derived icon and windDirection fields.
// The handler proxies the full upstream record, so fields not listed here
// are kept with the JSON types the upstream sent.
type DTO struct {
	City             string     `json:"city" example:"Shenzhen"`
	FeelsLikeC       string     `json:"FeelsLikeC" example:"31"`
	FeelsLikeF       string     `json:"FeelsLikeF" example:"88"`
	TempC            string     `json:"temp_C" example:"29"`
	TempF            string     `json:"temp_F" example:"84"`
	ObservationTime  string     `json:"observation_time" example:"02:10 AM"`
	LocalObsDateTime string     `json:"localObsDateTime,omitempty"`
	PrecipMM         string     `json:"precipMM" example:"0.0"`
	PrecipInches     string     `json:"precipInches,omitempty"`
	WeatherDesc      string     `json:"weatherDesc" example:"Partly cloudy"`
	Humidity         string     `json:"humidity" example:"79"`
	Pressure         string     `json:"pressure" example:"1008"`
	PressureInches   string     `json:"pressureInches,omitempty"`
	Visibility       string     `json:"visibility" example:"10"`
	VisibilityMiles  string     `json:"visibilityMiles,omitempty"`
	WindDir16Point   string     `json:"winddir16Point" example:"SE"`
	WindDirDegree    string     `json:"winddirDegree,omitempty"`
	WindSpeedKmph    string     `json:"windspeedKmph" example:"11"`
	WindSpeedMiles   string     `json:"windspeedMiles" example:"7"`
	CloudCover       string     `json:"cloudcover,omitempty"`
	UVIndex          string     `json:"uvIndex,omitempty"`
	WeatherCode      string     `json:"weatherCode,omitempty"`
	WeatherIconURL   []ValueDTO `json:"weatherIconUrl,omitempty"`
	Icon             string     `json:"icon" example:"⛅"`
	WindDirection    string     `json:"windDirection" example:"东南风"`
}

// toBody copies the upstream record and adds the derived fields.
func toBody(w entity.WeatherSnapshot) map[string]any {
	body := make(map[string]any, len(w.Record)+2)
	for k, v := range w.Record {
		body[k] = v
	}
	body["icon"] = w.Icon()
	body["windDirection"] = w.WindDirection()
	return body
}
