package weather

import "context"

// Provider abstracts a live weather data source (e.g. OpenWeatherMap, WeatherAPI, Open-Meteo).
// Location identifiers are opaque to the core.
type Provider interface {
	Name() string
	FetchReading(ctx context.Context, locationID string) (Reading, error)
}
