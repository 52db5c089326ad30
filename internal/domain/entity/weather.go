package entity

import (
	"encoding/json"
	"strings"
)

// WeatherSnapshot is the current observation for one city.
type WeatherSnapshot struct {
	City           string
	Description    string // normalized, never a list
	WindDir16Point string

	// Record is the full upstream record with weatherDesc normalized. Fields
	// the proxy does not interpret are kept verbatim, numbers included.
	Record map[string]json.RawMessage
}

const defaultWeatherIcon = "🌤️"

// iconRule maps description keywords to an icon. When refinements is non-empty
// the first refinement whose keywords match wins, otherwise icon is used.
type iconRule struct {
	keywords    []string
	icon        string
	refinements []iconRule
}

var weatherIconRules = []iconRule{
	{keywords: []string{"sunny", "晴", "clear"}, icon: "☀️"},
	{keywords: []string{"cloudy", "多云", "cloud"}, icon: "☁️", refinements: []iconRule{
		{keywords: []string{"partly", "少云", "partially"}, icon: "⛅"},
	}},
	{keywords: []string{"overcast", "阴"}, icon: "☁️"},
	{keywords: []string{"rain", "雨"}, icon: "🌧️", refinements: []iconRule{
		{keywords: []string{"heavy", "大", "暴雨"}, icon: "🌧️"},
		{keywords: []string{"shower", "阵雨"}, icon: "🌦️"},
		{keywords: []string{"light", "小", "小雨"}, icon: "🌦️"},
	}},
	{keywords: []string{"snow", "雪"}, icon: "🌨️", refinements: []iconRule{
		{keywords: []string{"heavy", "大"}, icon: "❄️"},
	}},
	{keywords: []string{"fog", "mist", "雾", "霾"}, icon: "🌫️"},
	{keywords: []string{"thunder", "storm", "雷"}, icon: "⛈️"},
	{keywords: []string{"hail", "冰雹"}, icon: "🌨️"},
}

// Icon picks an emoji for the description by keyword. Rules are checked in
// order, so "Patchy light rain with thunder" resolves to a rain icon.
func (w WeatherSnapshot) Icon() string {
	desc := strings.ToLower(w.Description)
	if desc == "" {
		return defaultWeatherIcon
	}

	for _, rule := range weatherIconRules {
		if !containsAny(desc, rule.keywords) {
			continue
		}
		for _, refinement := range rule.refinements {
			if containsAny(desc, refinement.keywords) {
				return refinement.icon
			}
		}
		return rule.icon
	}

	return defaultWeatherIcon
}

var windDirectionLabels = map[string]string{
	"N":  "北风",
	"NE": "东北风",
	"E":  "东风",
	"SE": "东南风",
	"S":  "南风",
	"SW": "西南风",
	"W":  "西风",
	"NW": "西北风",
}

// WindDirection returns the Chinese label for the eight principal compass
// points and the raw 16-point value for everything else (e.g. "NNE").
func (w WeatherSnapshot) WindDirection() string {
	if label, ok := windDirectionLabels[w.WindDir16Point]; ok {
		return label
	}
	return w.WindDir16Point
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
