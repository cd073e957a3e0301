package strategy

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/i474232898/weather-station/internal/weather"
)

// Names accepted by Builder.ByName.
const (
	KindRealtime  = "realtime"
	KindSimulated = "simulated"
	KindScheduled = "scheduled"
	KindManual    = "manual"
)

// Builder creates strategies that share a provider, a default location and
// options. Every call returns a fresh instance, except Manual: its stored
// reading is the thing callers edit, so one instance is kept.
type Builder struct {
	provider        weather.Provider
	defaultLocation string
	opts            []Option
	manual          *Manual

	seedMu sync.Mutex
	seed   *rand.Rand
}

// NewBuilder creates a Builder. provider may be nil; live strategies then
// always serve their fallback readings.
func NewBuilder(provider weather.Provider, defaultLocation string, opts ...Option) *Builder {
	return &Builder{
		provider:        provider,
		defaultLocation: defaultLocation,
		opts:            opts,
		manual:          NewManual(opts...),
		seed:            newOptions(opts).rng,
	}
}

// DefaultLocation returns the location used when none is given.
func (b *Builder) DefaultLocation() string { return b.defaultLocation }

func (b *Builder) location(id string) string {
	if id = strings.TrimSpace(id); id != "" {
		return id
	}
	return b.defaultLocation
}

func (b *Builder) Realtime(locationID string) *Live {
	return NewLive(b.provider, b.location(locationID), b.opts...)
}

// Simulated returns a new Simulated with its own random source, seeded from
// the builder's.
func (b *Builder) Simulated() *Simulated {
	b.seedMu.Lock()
	s1, s2 := b.seed.Uint64(), b.seed.Uint64()
	b.seedMu.Unlock()

	opts := append(slices.Clone(b.opts), WithRand(rand.New(rand.NewPCG(s1, s2))))
	return NewSimulated(opts...)
}

func (b *Builder) Scheduled(locationID string) *Scheduled {
	return NewScheduled(b.provider, b.location(locationID), b.opts...)
}

func (b *Builder) Manual() *Manual {
	return b.manual
}

// ByName builds the strategy registered under kind.
func (b *Builder) ByName(kind, locationID string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case KindRealtime:
		return b.Realtime(locationID), nil
	case KindSimulated:
		return b.Simulated(), nil
	case KindScheduled:
		return b.Scheduled(locationID), nil
	case KindManual:
		return b.Manual(), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", kind)
	}
}
