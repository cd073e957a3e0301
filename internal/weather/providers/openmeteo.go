package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/i474232898/weather-station/internal/weather"
)

// OpenMeteoProvider implements weather.Provider for Open-Meteo. It needs no
// API key but only serves locations the Locator can resolve.
type OpenMeteoProvider struct {
	base
}

func NewOpenMeteoProvider(client *http.Client, opts ...Option) *OpenMeteoProvider {
	return &OpenMeteoProvider{
		base: newBase("openmeteo", "https://api.open-meteo.com/v1/forecast", client, opts...),
	}
}

func (p *OpenMeteoProvider) FetchReading(ctx context.Context, locationID string) (weather.Reading, error) {
	c, err := p.locator.Resolve(locationID)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("openmeteo: %w", err)
	}

	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", c.Lat))
	values.Set("longitude", fmt.Sprintf("%f", c.Lon))
	values.Set("current", "temperature_2m,relative_humidity_2m,surface_pressure,wind_speed_10m,weather_code")

	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s?%s", p.baseURL, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequestWithResilience(ctx, p.httpCfg, p.circuit, buildRequest)
	if err != nil {
		return weather.Reading{}, fmt.Errorf("openmeteo: %w", err)
	}
	defer resp.Body.Close()

	var payload struct {
		Current *struct {
			Temperature float64 `json:"temperature_2m"`
			Humidity    float64 `json:"relative_humidity_2m"`
			Pressure    float64 `json:"surface_pressure"`
			WindSpeed   float64 `json:"wind_speed_10m"` // km/h by default
			WeatherCode int     `json:"weather_code"`
		} `json:"current"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return weather.Reading{}, fmt.Errorf("openmeteo: decode: %w", err)
	}
	if payload.Current == nil {
		return weather.Reading{}, fmt.Errorf("openmeteo: payload has no current block")
	}

	return weather.Reading{
		Temperature: payload.Current.Temperature,
		Humidity:    payload.Current.Humidity,
		Pressure:    payload.Current.Pressure,
		WindSpeed:   payload.Current.WindSpeed,
		Description: titleCase(string(mapOpenMeteoCondition(payload.Current.WeatherCode))),
	}, nil
}

func mapOpenMeteoCondition(code int) weather.Condition {
	// Mapping based on Open-Meteo weather codes (simplified).
	switch {
	case code == 0:
		return weather.ConditionClear
	case code >= 1 && code <= 3:
		return weather.ConditionCloudy
	case code == 45 || code == 48:
		return weather.ConditionMist
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return weather.ConditionRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return weather.ConditionSnow
	case code >= 95:
		return weather.ConditionStorm
	default:
		return weather.ConditionUnknown
	}
}
