package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-station/internal/weather"
)

// OpenWeatherProvider implements weather.Provider for OpenWeatherMap.
type OpenWeatherProvider struct {
	base
	apiKey string
}

func NewOpenWeatherProvider(client *http.Client, apiKey string, opts ...Option) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		base:   newBase("openweathermap", "https://api.openweathermap.org/data/2.5/weather", client, opts...),
		apiKey: apiKey,
	}
}

func (p *OpenWeatherProvider) FetchReading(ctx context.Context, locationID string) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("openweather: %w", errMissingAPIKey)
	}

	values := url.Values{}
	values.Set("appid", p.apiKey)
	values.Set("units", "metric")
	// Prefer coordinates; fall back to a free-text city query.
	if c, err := p.locator.Resolve(locationID); err == nil {
		values.Set("lat", fmt.Sprintf("%f", c.Lat))
		values.Set("lon", fmt.Sprintf("%f", c.Lon))
	} else {
		values.Set("q", NormalizeLocation(locationID))
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("openweather: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Main struct {
			Temp     *float64 `json:"temp"`
			Humidity float64  `json:"humidity"`
			Pressure float64  `json:"pressure"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("openweather: decode: %w", err)
	}
	if payload.Main.Temp == nil {
		return weather.Reading{}, fmt.Errorf("openweather: payload has no main.temp")
	}

	desc := string(mapOpenWeatherCondition(payload.Weather))
	if len(payload.Weather) > 0 && payload.Weather[0].Description != "" {
		desc = payload.Weather[0].Description
	}

	return weather.Reading{
		Temperature: *payload.Main.Temp,
		Humidity:    payload.Main.Humidity,
		Pressure:    payload.Main.Pressure,
		WindSpeed:   payload.Wind.Speed * 3.6, // m/s -> km/h
		Description: titleCase(desc),
	}, nil
}

func mapOpenWeatherCondition(items []struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}) weather.Condition {
	if len(items) == 0 {
		return weather.ConditionUnknown
	}
	switch items[0].Main {
	case "Clear":
		return weather.ConditionClear
	case "Clouds":
		return weather.ConditionCloudy
	case "Rain", "Drizzle":
		return weather.ConditionRain
	case "Snow":
		return weather.ConditionSnow
	case "Thunderstorm":
		return weather.ConditionStorm
	case "Mist", "Fog", "Haze":
		return weather.ConditionMist
	default:
		return weather.ConditionUnknown
	}
}
