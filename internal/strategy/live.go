package strategy

import (
	"context"

	"github.com/i474232898/weather-station/internal/weather"
)

// Live asks a provider for the current weather at one location and degrades
// to FallbackReading when the provider fails.
type Live struct {
	provider   weather.Provider
	locationID string
	opts       options
}

func NewLive(provider weather.Provider, locationID string, opts ...Option) *Live {
	return &Live{
		provider:   provider,
		locationID: locationID,
		opts:       newOptions(opts),
	}
}

func (s *Live) Name() string { return "Real-time" }

// Location returns the location id the strategy is bound to.
func (s *Live) Location() string { return s.locationID }

func (s *Live) GetReading(ctx context.Context) weather.Reading {
	r, err := fetch(ctx, s.provider, s.locationID, s.opts.timeout)
	if err != nil {
		s.opts.logger.Warn("live fetch failed, serving fallback reading",
			"location", s.locationID,
			"error", err,
		)
		return FallbackReading(s.locationID)
	}
	return r
}
