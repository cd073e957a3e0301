package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

// ErrNoProviders is returned by a MultiProvider with nothing to query.
var ErrNoProviders = errors.New("no weather providers configured")

// AggregateReadings combines multiple provider readings into a single Reading.
// Numeric fields are averaged; the description is selected by majority
// (first seen wins a tie).
func AggregateReadings(readings []Reading) Reading {
	if len(readings) == 0 {
		return Reading{}
	}

	var (
		sumTemp     float64
		sumHumidity float64
		sumWind     float64
		sumPressure float64
	)

	counts := make(map[string]int)
	order := make([]string, 0, len(readings))

	for _, r := range readings {
		sumTemp += r.Temperature
		sumHumidity += r.Humidity
		sumWind += r.WindSpeed
		sumPressure += r.Pressure

		if _, seen := counts[r.Description]; !seen {
			order = append(order, r.Description)
		}
		counts[r.Description]++
	}

	n := float64(len(readings))

	best := order[0]
	for _, d := range order[1:] {
		if counts[d] > counts[best] {
			best = d
		}
	}

	return Reading{
		Temperature: sumTemp / n,
		Humidity:    sumHumidity / n,
		Pressure:    sumPressure / n,
		WindSpeed:   sumWind / n,
		Description: best,
	}
}

// MultiProvider queries several providers concurrently and averages
// whatever succeeds. It fails only when every provider fails.
type MultiProvider struct {
	providers []Provider
	logger    *slog.Logger
}

// NewMultiProvider creates a MultiProvider. A nil logger uses slog.Default().
func NewMultiProvider(logger *slog.Logger, providers ...Provider) *MultiProvider {
	if logger == nil {
		logger = slog.Default()
	}
	return &MultiProvider{providers: providers, logger: logger}
}

func (m *MultiProvider) Name() string {
	names := make([]string, 0, len(m.providers))
	for _, p := range m.providers {
		names = append(names, p.Name())
	}
	return "multi(" + strings.Join(names, ",") + ")"
}

// Len returns the number of wrapped providers.
func (m *MultiProvider) Len() int { return len(m.providers) }

// FetchReading fans out to all providers and aggregates successful readings.
func (m *MultiProvider) FetchReading(ctx context.Context, locationID string) (Reading, error) {
	if len(m.providers) == 0 {
		return Reading{}, ErrNoProviders
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		readings = make([]Reading, len(m.providers))
		ok       = make([]bool, len(m.providers))
		errs     []error
	)

	for i, p := range m.providers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			r, err := p.FetchReading(ctx, locationID)
			if err != nil {
				// Log and continue; we want partial success when possible.
				m.logger.Debug("provider fetch failed", "provider", p.Name(), "location", locationID, "error", err)
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
				mu.Unlock()
				return
			}
			readings[i] = r
			ok[i] = true
		}()
	}

	wg.Wait()

	// Keep provider order so aggregation does not depend on goroutine timing.
	succeeded := make([]Reading, 0, len(readings))
	for i, r := range readings {
		if ok[i] {
			succeeded = append(succeeded, r)
		}
	}
	if len(succeeded) == 0 {
		return Reading{}, errors.Join(errs...)
	}
	return AggregateReadings(succeeded), nil
}
