package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/i474232898/weather-station/internal/weather"
)

// WeatherAPIProvider implements weather.Provider for WeatherAPI.com.
type WeatherAPIProvider struct {
	base
	apiKey string
}

func NewWeatherAPIProvider(client *http.Client, apiKey string, opts ...Option) *WeatherAPIProvider {
	return &WeatherAPIProvider{
		base:   newBase("weatherapi", "https://api.weatherapi.com/v1/current.json", client, opts...),
		apiKey: apiKey,
	}
}

func (p *WeatherAPIProvider) FetchReading(ctx context.Context, locationID string) (weather.Reading, error) {
	if p.apiKey == "" {
		return weather.Reading{}, fmt.Errorf("weatherapi: %w", errMissingAPIKey)
	}

	values := url.Values{}
	values.Set("key", p.apiKey)
	// WeatherAPI uses "q" for location; it accepts a city name or "lat,lon".
	if c, err := p.locator.Resolve(locationID); err == nil {
		values.Set("q", fmt.Sprintf("%f,%f", c.Lat, c.Lon))
	} else {
		values.Set("q", NormalizeLocation(locationID))
	}

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("weatherapi: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Current *struct {
			TempC      float64 `json:"temp_c"`
			Humidity   float64 `json:"humidity"`
			WindKph    float64 `json:"wind_kph"`
			PressureMb float64 `json:"pressure_mb"`
			Condition  struct {
				Text string `json:"text"`
			} `json:"condition"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("weatherapi: decode: %w", err)
	}
	if payload.Current == nil {
		return weather.Reading{}, fmt.Errorf("weatherapi: payload has no current block")
	}

	desc := strings.TrimSpace(payload.Current.Condition.Text)
	if desc == "" {
		desc = string(weather.ConditionUnknown)
	}

	return weather.Reading{
		Temperature: payload.Current.TempC,
		Humidity:    payload.Current.Humidity,
		Pressure:    payload.Current.PressureMb,
		WindSpeed:   payload.Current.WindKph,
		Description: titleCase(desc),
	}, nil
}
