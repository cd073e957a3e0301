// Package station holds the current reading, the active acquisition strategy
// and the observers that are told about every refresh.
package station

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/i474232898/weather-station/internal/observer"
	"github.com/i474232898/weather-station/internal/strategy"
	"github.com/i474232898/weather-station/internal/weather"
)

// Station is safe for concurrent use. Refreshes are serialized; reads of the
// current reading never wait on a provider call.
type Station struct {
	// refreshMu serializes Refresh. CurrentReading never takes it.
	refreshMu sync.Mutex

	mu        sync.RWMutex
	strategy  strategy.Strategy
	current   weather.Reading
	observers []observer.Observer

	logger *slog.Logger
}

// New creates a Station holding weather.DefaultReading(). A nil logger uses slog.Default().
func New(logger *slog.Logger) *Station {
	if logger == nil {
		logger = slog.Default()
	}
	return &Station{
		current: weather.DefaultReading(),
		logger:  logger,
	}
}

// SetStrategy replaces the active strategy. It does not refresh.
func (s *Station) SetStrategy(st strategy.Strategy) {
	s.mu.Lock()
	s.strategy = st
	s.mu.Unlock()

	name := "<none>"
	if st != nil {
		name = st.Name()
	}
	s.logger.Info("strategy changed", "strategy", name)
}

// StrategyName returns the active strategy's name, or "" when none is set.
func (s *Station) StrategyName() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.strategy == nil {
		return ""
	}
	return s.strategy.Name()
}

// AddObserver appends o to the notification list. Duplicates are kept.
func (s *Station) AddObserver(o observer.Observer) {
	s.mu.Lock()
	s.observers = append(s.observers, o)
	s.mu.Unlock()

	s.logger.Info("observer added", "observer", o.Name())
}

// Observers returns observer names in notification order.
func (s *Station) Observers() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.observers))
	for _, o := range s.observers {
		names = append(names, o.Name())
	}
	return names
}

// CurrentReading returns the last stored reading.
func (s *Station) CurrentReading() weather.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh pulls a reading from the active strategy, stores it, and notifies
// every observer in registration order. Without a strategy it does nothing.
// It returns the reading held after the call.
func (s *Station) Refresh(ctx context.Context) weather.Reading {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	s.mu.RLock()
	st := s.strategy
	s.mu.RUnlock()

	if st == nil {
		s.logger.Debug("refresh skipped: no strategy set")
		return s.CurrentReading()
	}

	refreshID := uuid.NewString()
	r := st.GetReading(ctx)

	s.mu.Lock()
	s.current = r
	observers := make([]observer.Observer, len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	s.logger.Info("weather refreshed",
		"refreshID", refreshID,
		"strategy", st.Name(),
		"temperature", r.Temperature,
		"description", r.Description,
		"observers", len(observers),
	)

	for _, o := range observers {
		s.notify(refreshID, o, r)
	}
	return r
}

// notify isolates one observer so a panic does not stop the fan-out.
func (s *Station) notify(refreshID string, o observer.Observer, r weather.Reading) {
	defer func() {
		if rec := recover(); rec != nil {
			s.logger.Error("observer update failed",
				"refreshID", refreshID,
				"observer", o.Name(),
				"panic", rec,
			)
		}
	}()
	o.Update(r)
}
