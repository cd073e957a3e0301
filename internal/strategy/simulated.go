package strategy

import (
	"context"
	"sync"

	"github.com/i474232898/weather-station/internal/weather"
)

// Bounds for simulated values.
const (
	simMinTemp     = -10.0
	simMaxTemp     = 35.0
	simMaxStep     = 2.0
	simMinHumidity = 30.0
	simMaxHumidity = 90.0
	simMinPressure = 990.0
	simMaxPressure = 1030.0
	simMaxWind     = 30.0
)

// Simulated produces plausible readings by random-walking the last temperature.
type Simulated struct {
	mu       sync.Mutex
	lastTemp float64
	opts     options
}

func NewSimulated(opts ...Option) *Simulated {
	return &Simulated{
		lastTemp: 20,
		opts:     newOptions(opts),
	}
}

func (s *Simulated) Name() string { return "Simulated" }

func (s *Simulated) GetReading(_ context.Context) weather.Reading {
	s.mu.Lock()
	defer s.mu.Unlock()

	rng := s.opts.rng
	step := (rng.Float64()*2 - 1) * simMaxStep
	s.lastTemp = weather.Clamp(s.lastTemp+step, simMinTemp, simMaxTemp)

	r := weather.Reading{
		Temperature: s.lastTemp,
		Humidity:    simMinHumidity + rng.Float64()*(simMaxHumidity-simMinHumidity),
		Pressure:    simMinPressure + rng.Float64()*(simMaxPressure-simMinPressure),
		WindSpeed:   rng.Float64() * simMaxWind,
	}.Normalize()
	r.Description = weather.Describe(r.Temperature, r.Humidity, r.WindSpeed)
	return r
}
