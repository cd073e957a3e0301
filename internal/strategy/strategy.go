// Package strategy holds the acquisition policies a station uses to produce
// its next reading. Every variant absorbs its own failures: GetReading always
// returns a usable reading.
package strategy

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/i474232898/weather-station/internal/weather"
)

// Strategy produces the next weather reading on demand.
type Strategy interface {
	GetReading(ctx context.Context) weather.Reading
	Name() string
}

// DefaultTimeout bounds a single provider call made by Live and Scheduled.
const DefaultTimeout = 10 * time.Second

type options struct {
	logger  *slog.Logger
	timeout time.Duration
	now     func() time.Time
	rng     *rand.Rand
}

// Option customizes a strategy.
type Option func(*options)

// WithLogger sets the logger used to report absorbed failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTimeout bounds each provider call. Zero or negative keeps the default.
func WithTimeout(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithClock replaces time.Now for time-of-day decisions.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithRand sets the random source used by Simulated. A *rand.Rand is not
// safe for concurrent use, so pass each Simulated its own; a Builder seeds a
// fresh source per instance from the one it is given.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}

func newOptions(opts []Option) options {
	o := options{
		logger:  slog.Default(),
		timeout: DefaultTimeout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))
	}
	return o
}

// fetch calls the provider under a timeout and turns panics and out-of-domain
// payloads into errors, so callers only have one failure path to handle.
func fetch(ctx context.Context, p weather.Provider, locationID string, timeout time.Duration) (r weather.Reading, err error) {
	if p == nil {
		return weather.Reading{}, fmt.Errorf("no provider configured")
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			r, err = weather.Reading{}, fmt.Errorf("provider %s panicked: %v", p.Name(), rec)
		}
	}()

	r, err = p.FetchReading(ctx, locationID)
	if err != nil {
		return weather.Reading{}, err
	}
	if err := r.Validate(); err != nil {
		return weather.Reading{}, fmt.Errorf("provider %s returned malformed reading: %w", p.Name(), err)
	}
	return r, nil
}
