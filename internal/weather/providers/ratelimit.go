package providers

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/i474232898/weather-station/internal/weather"
)

// RateLimitedProvider wraps a weather.Provider with a token-bucket limiter.
type RateLimitedProvider struct {
	provider weather.Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a rate limited provider.
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedProvider(provider weather.Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// FetchReading waits for limiter permission, then forwards to the wrapped provider.
func (r *RateLimitedProvider) FetchReading(ctx context.Context, locationID string) (weather.Reading, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return weather.Reading{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchReading(ctx, locationID)
}

func (r *RateLimitedProvider) Name() string {
	return r.name
}

var (
	_ weather.Provider = (*RateLimitedProvider)(nil)
	_ weather.Provider = (*OpenWeatherProvider)(nil)
	_ weather.Provider = (*WeatherAPIProvider)(nil)
	_ weather.Provider = (*OpenMeteoProvider)(nil)
	_ weather.Provider = (*weather.MultiProvider)(nil)
)
