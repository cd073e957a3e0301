package strategy

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/i474232898/weather-station/internal/weather"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeProvider struct {
	reading weather.Reading
	err     error
	panics  bool
	block   bool
	calls   int
	lastLoc string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) FetchReading(ctx context.Context, locationID string) (weather.Reading, error) {
	f.calls++
	f.lastLoc = locationID
	if f.panics {
		panic("provider exploded")
	}
	if f.block {
		<-ctx.Done()
		return weather.Reading{}, ctx.Err()
	}
	return f.reading, f.err
}

func TestLiveReturnsProviderReading(t *testing.T) {
	want := weather.NewReading(12.3, 45, 1001, 7.2, "Light Rain")
	p := &fakeProvider{reading: want}
	s := NewLive(p, "astana", WithLogger(quiet))

	if got := s.GetReading(context.Background()); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if p.calls != 1 || p.lastLoc != "astana" {
		t.Fatalf("expected one call for astana, got %d calls for %q", p.calls, p.lastLoc)
	}
	if s.Name() != "Real-time" {
		t.Fatalf("unexpected name %q", s.Name())
	}
}

func TestLiveFallsBackOnFailure(t *testing.T) {
	cases := map[string]*fakeProvider{
		"error":      {err: errors.New("network down")},
		"panic":      {panics: true},
		"malformed":  {reading: weather.NewReading(math.NaN(), 50, 1000, 5, "")},
		"outOfRange": {reading: weather.NewReading(20, 50, 10, 5, "")},
		"timeout":    {block: true},
	}

	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			s := NewLive(p, "Almaty", WithLogger(quiet), WithTimeout(20*time.Millisecond))
			got := s.GetReading(context.Background())
			if want := FallbackReading("almaty"); got != want {
				t.Fatalf("expected fallback %+v, got %+v", want, got)
			}
		})
	}
}

func TestLiveWithoutProvider(t *testing.T) {
	s := NewLive(nil, "mars", WithLogger(quiet))
	if got := s.GetReading(context.Background()); got != weather.NewReading(20, 65, 1013, 5, "Clear") {
		t.Fatalf("expected generic fallback, got %+v", got)
	}
}

func TestFallbackReading(t *testing.T) {
	if got := FallbackReading(" AKTAU "); got != weather.NewReading(24, 65, 1011, 15, "Windy") {
		t.Fatalf("unexpected aktau fallback %+v", got)
	}
	if got := FallbackReading("karaganda"); got.Description != "Overcast" {
		t.Fatalf("unexpected karaganda fallback %+v", got)
	}
}

func TestSimulatedStaysInBounds(t *testing.T) {
	s := NewSimulated(WithRand(rand.New(rand.NewPCG(1, 2))))
	ctx := context.Background()

	prev := 20.0
	for i := 0; i < 5000; i++ {
		r := s.GetReading(ctx)
		if r.Temperature < simMinTemp || r.Temperature > simMaxTemp {
			t.Fatalf("temperature %v out of bounds", r.Temperature)
		}
		if math.Abs(r.Temperature-prev) > simMaxStep+0.1 {
			t.Fatalf("temperature jumped from %v to %v", prev, r.Temperature)
		}
		prev = r.Temperature
		if r.Humidity < simMinHumidity || r.Humidity > simMaxHumidity {
			t.Fatalf("humidity %v out of bounds", r.Humidity)
		}
		if r.Pressure < simMinPressure || r.Pressure > simMaxPressure {
			t.Fatalf("pressure %v out of bounds", r.Pressure)
		}
		if r.WindSpeed < 0 || r.WindSpeed > simMaxWind {
			t.Fatalf("wind %v out of bounds", r.WindSpeed)
		}
		if err := r.Validate(); err != nil {
			t.Fatalf("simulated reading invalid: %v", err)
		}
		if want := weather.Describe(r.Temperature, r.Humidity, r.WindSpeed); r.Description != want {
			t.Fatalf("expected description %q, got %q", want, r.Description)
		}
	}
}

func TestTimeOfDayFor(t *testing.T) {
	cases := map[int]TimeOfDay{
		0: Night, 4: Night, 5: Morning, 11: Morning, 12: Afternoon, 16: Afternoon,
		17: Evening, 20: Evening, 21: Night, 23: Night,
	}
	for hour, want := range cases {
		if got := TimeOfDayFor(hour); got != want {
			t.Errorf("hour %d: expected %s, got %s", hour, want, got)
		}
	}
}

func clockAt(hour int) func() time.Time {
	return func() time.Time { return time.Date(2024, 6, 1, hour, 30, 0, 0, time.UTC) }
}

func TestScheduledUsesProvider(t *testing.T) {
	p := &fakeProvider{reading: weather.NewReading(23.4, 51, 1009, 14.2, "Sunny")}
	s := NewScheduled(p, "almaty", WithLogger(quiet), WithClock(clockAt(13)))

	got := s.GetReading(context.Background())
	want := weather.NewReading(23.4, 51, 1009, 14.2,
		"Afternoon forecast for almaty: 23.4°C, 51% humidity, 1009 hPa, wind 14.2 km/h")
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if p.calls != 1 {
		t.Fatalf("expected one provider call, got %d", p.calls)
	}
}

func TestScheduledFallsBackPerTimeOfDay(t *testing.T) {
	p := &fakeProvider{err: errors.New("offline")}

	s := NewScheduled(p, "astana", WithLogger(quiet), WithClock(clockAt(6)))
	got := s.GetReading(context.Background())
	want := weather.NewReading(16, 70, 1015, 5,
		"Morning forecast for astana: 16.0°C, 70% humidity, 1015 hPa, wind 5.0 km/h")
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	night := NewScheduled(nil, "astana", WithClock(clockAt(22))).GetReading(context.Background())
	if night.Temperature != 14 || !strings.HasPrefix(night.Description, "Night forecast for astana") {
		t.Fatalf("unexpected night reading %+v", night)
	}
}

func TestManualAcceptsAndRounds(t *testing.T) {
	s := NewManual(WithLogger(quiet))

	res := s.SetManualData(25.5, 80.0, 1008.0, 15.0)
	if !res.Accepted {
		t.Fatalf("expected acceptance, got %+v", res)
	}
	want := weather.NewReading(25.5, 80, 1008, 15, "Hot, Breezy (80% humidity)")
	if got := s.GetReading(context.Background()); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	res = s.SetManualData(25.55, 64.44, 1011.4, 3.05)
	if !res.Accepted {
		t.Fatalf("expected acceptance, got %+v", res)
	}
	got := s.GetReading(context.Background())
	if got.Temperature != 25.6 || got.Humidity != 64.4 || got.Pressure != 1011 || got.WindSpeed != 3.1 {
		t.Fatalf("unexpected rounding %+v", got)
	}
	if got.Description != "Hot, Calm (64% humidity)" {
		t.Fatalf("unexpected description %q", got.Description)
	}

	s.SetManualData(25.0, 50, 1000, 20)
	if got := s.GetReading(context.Background()).Description; got != "Warm, Breezy (50% humidity)" {
		t.Fatalf("boundary values should fall into the lower band, got %q", got)
	}

	s.SetManualData(-0.04, 50, 1000, 5)
	if got := s.GetReading(context.Background()); math.Signbit(got.Temperature) || !strings.HasPrefix(got.String(), "Temperature: 0.0C") {
		t.Fatalf("expected positive zero temperature, got %s", got)
	}
}

func TestManualRejectsOutOfRange(t *testing.T) {
	s := NewManual(WithLogger(quiet))
	before := s.GetReading(context.Background())
	if before != weather.NewReading(20.0, 65.0, 1013.0, 5.0, "Manual Input") {
		t.Fatalf("unexpected initial reading %+v", before)
	}

	inputs := [][4]float64{
		{1000, 50, 1000, 10},
		{20, 101, 1000, 10},
		{20, 50, 869, 10},
		{20, 50, 1000, 151},
		{-61, 50, 1000, 10},
		{math.NaN(), 50, 1000, 10},
	}
	for _, in := range inputs {
		res := s.SetManualData(in[0], in[1], in[2], in[3])
		if res.Accepted {
			t.Fatalf("expected rejection for %v", in)
		}
		if res.Reason == "" || len(res.Fields) == 0 {
			t.Fatalf("expected reason and fields for %v, got %+v", in, res)
		}
		if got := s.GetReading(context.Background()); got != before {
			t.Fatalf("rejected update mutated state: %+v", got)
		}
	}

	res := s.SetManualData(1000, 50, 1000, 10)
	if res.Fields[0].Field != "temperature" {
		t.Fatalf("expected temperature to be reported, got %+v", res.Fields)
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder(nil, "almaty", WithLogger(quiet))

	for _, kind := range []string{KindRealtime, KindSimulated, KindScheduled, KindManual, " Manual "} {
		s, err := b.ByName(kind, "")
		if err != nil {
			t.Fatalf("ByName(%q): %v", kind, err)
		}
		if s == nil {
			t.Fatalf("ByName(%q) returned nil", kind)
		}
	}
	if _, err := b.ByName("psychic", ""); err == nil {
		t.Fatal("expected error for unknown strategy")
	}

	if b.Realtime("").Location() != "almaty" {
		t.Fatal("expected default location")
	}
	if b.Scheduled("aktobe").Location() != "aktobe" {
		t.Fatal("expected explicit location")
	}
	if b.Manual() != b.Manual() {
		t.Fatal("manual strategy should be shared")
	}
	if b.Simulated() == b.Simulated() {
		t.Fatal("simulated strategies should be fresh instances")
	}
}

func TestBuilderSimulatedOwnRandomSource(t *testing.T) {
	newBuilder := func() *Builder {
		return NewBuilder(nil, "almaty", WithLogger(quiet), WithRand(rand.New(rand.NewPCG(7, 9))))
	}

	b := newBuilder()
	a, c := b.Simulated(), b.Simulated()
	if a.opts.rng == c.opts.rng {
		t.Fatal("expected each Simulated to get its own random source")
	}

	// Seeding stays deterministic for a seeded builder.
	want := newBuilder().Simulated().GetReading(context.Background())
	if got := newBuilder().Simulated().GetReading(context.Background()); got != want {
		t.Fatalf("expected reproducible readings, got %+v and %+v", got, want)
	}

	var wg sync.WaitGroup
	for _, s := range []*Simulated{a, c} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.GetReading(context.Background())
			}
		}()
	}
	wg.Wait()
}
