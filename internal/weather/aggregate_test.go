package weather

import (
	"context"
	"errors"
	"testing"
)

type stubProvider struct {
	name    string
	reading Reading
	err     error
}

func (s stubProvider) Name() string { return s.name }

func (s stubProvider) FetchReading(_ context.Context, _ string) (Reading, error) {
	return s.reading, s.err
}

func TestAggregateReadings(t *testing.T) {
	got := AggregateReadings([]Reading{
		NewReading(10, 40, 1000, 4, "Cloudy"),
		NewReading(20, 60, 1010, 8, "Clear"),
		NewReading(30, 80, 1020, 12, "Clear"),
	})

	if got.Temperature != 20 || got.Humidity != 60 || got.Pressure != 1010 || got.WindSpeed != 8 {
		t.Fatalf("unexpected averages: %+v", got)
	}
	if got.Description != "Clear" {
		t.Fatalf("expected majority description Clear, got %q", got.Description)
	}

	tie := AggregateReadings([]Reading{
		NewReading(0, 0, 900, 0, "A"),
		NewReading(0, 0, 900, 0, "B"),
	})
	if tie.Description != "A" {
		t.Fatalf("expected first description to win a tie, got %q", tie.Description)
	}
}

func TestMultiProviderPartialSuccess(t *testing.T) {
	mp := NewMultiProvider(nil,
		stubProvider{name: "a", reading: NewReading(10, 50, 1000, 10, "Sunny")},
		stubProvider{name: "b", err: errors.New("boom")},
		stubProvider{name: "c", reading: NewReading(20, 70, 1010, 20, "Sunny")},
	)

	got, err := mp.FetchReading(context.Background(), "almaty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := NewReading(15, 60, 1005, 15, "Sunny")
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if mp.Name() != "multi(a,b,c)" {
		t.Fatalf("unexpected name %q", mp.Name())
	}
}

func TestMultiProviderAllFail(t *testing.T) {
	boom := errors.New("boom")
	mp := NewMultiProvider(nil, stubProvider{name: "a", err: boom})

	if _, err := mp.FetchReading(context.Background(), "x"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped provider error, got %v", err)
	}

	empty := NewMultiProvider(nil)
	if _, err := empty.FetchReading(context.Background(), "x"); !errors.Is(err, ErrNoProviders) {
		t.Fatalf("expected ErrNoProviders, got %v", err)
	}
}
