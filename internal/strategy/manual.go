package strategy

import (
	"context"
	"errors"
	"sync"

	"github.com/i474232898/weather-station/internal/weather"
)

// ValidationResult reports whether a manual update was applied.
type ValidationResult struct {
	Accepted bool                 `json:"accepted"`
	Reason   string               `json:"reason,omitempty"`
	Fields   []weather.FieldError `json:"fields,omitempty"`
}

// Manual serves caller-supplied values. Updates are all-or-nothing: one
// out-of-domain value rejects the whole update.
type Manual struct {
	mu      sync.RWMutex
	reading weather.Reading
	opts    options
}

func NewManual(opts ...Option) *Manual {
	return &Manual{
		reading: weather.NewReading(20.0, 65.0, 1013.0, 5.0, "Manual Input"),
		opts:    newOptions(opts),
	}
}

func (s *Manual) Name() string { return "Manual Input" }

func (s *Manual) GetReading(_ context.Context) weather.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.reading
}

// SetManualData validates and stores a new reading. Accepted values are
// clamped, then rounded (pressure to a whole hPa, the rest to one decimal),
// and the description is derived from the stored values.
func (s *Manual) SetManualData(temperature, humidity, pressure, windSpeed float64) ValidationResult {
	candidate := weather.NewReading(temperature, humidity, pressure, windSpeed, "")
	if err := candidate.Validate(); err != nil {
		res := ValidationResult{Reason: err.Error()}
		var verr *weather.ValidationError
		if errors.As(err, &verr) {
			res.Fields = verr.Fields
		}
		s.opts.logger.Info("manual update rejected", "reason", res.Reason)
		return res
	}

	r := candidate.Normalize()
	r.Description = weather.Describe(r.Temperature, r.Humidity, r.WindSpeed)

	s.mu.Lock()
	s.reading = r
	s.mu.Unlock()

	return ValidationResult{Accepted: true}
}

var (
	_ Strategy = (*Live)(nil)
	_ Strategy = (*Simulated)(nil)
	_ Strategy = (*Scheduled)(nil)
	_ Strategy = (*Manual)(nil)
)
