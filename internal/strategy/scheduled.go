package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/i474232898/weather-station/internal/weather"
)

// TimeOfDay labels an hour of a 24-hour clock.
type TimeOfDay string

const (
	Morning   TimeOfDay = "Morning"
	Afternoon TimeOfDay = "Afternoon"
	Evening   TimeOfDay = "Evening"
	Night     TimeOfDay = "Night"
)

// TimeOfDayFor maps an hour to its label: [5,12) Morning, [12,17) Afternoon,
// [17,21) Evening, everything else Night.
func TimeOfDayFor(hour int) TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 17:
		return Afternoon
	case hour >= 17 && hour < 21:
		return Evening
	default:
		return Night
	}
}

var scheduledFallback = map[TimeOfDay]weather.Reading{
	Morning:   weather.NewReading(16, 70, 1015, 5, ""),
	Afternoon: weather.NewReading(22, 60, 1013, 8, ""),
	Evening:   weather.NewReading(19, 65, 1014, 12, ""),
	Night:     weather.NewReading(14, 75, 1016, 3, ""),
}

// Scheduled produces a time-of-day forecast for a location. It prefers the
// provider and uses a fixed reading per time of day when the provider fails.
type Scheduled struct {
	provider   weather.Provider
	locationID string
	opts       options
}

// NewScheduled creates a Scheduled strategy. provider may be nil, in which
// case only the fixed readings are served.
func NewScheduled(provider weather.Provider, locationID string, opts ...Option) *Scheduled {
	return &Scheduled{
		provider:   provider,
		locationID: locationID,
		opts:       newOptions(opts),
	}
}

func (s *Scheduled) Name() string { return "Hourly Forecast" }

// Location returns the location id the strategy is bound to.
func (s *Scheduled) Location() string { return s.locationID }

func (s *Scheduled) GetReading(ctx context.Context) weather.Reading {
	tod := TimeOfDayFor(s.opts.now().Hour())

	r, err := fetch(ctx, s.provider, s.locationID, s.opts.timeout)
	if err != nil {
		if s.provider != nil {
			s.opts.logger.Warn("scheduled fetch failed, serving fixed forecast",
				"location", s.locationID,
				"timeOfDay", tod,
				"error", err,
			)
		}
		r = scheduledFallback[tod]
	}

	r.Description = fmt.Sprintf("%s forecast for %s: %.1f°C, %.0f%% humidity, %.0f hPa, wind %.1f km/h",
		tod, strings.TrimSpace(s.locationID), r.Temperature, r.Humidity, r.Pressure, r.WindSpeed)
	return r
}
