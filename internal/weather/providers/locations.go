package providers

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/kelvins/geocoder"
)

// ErrUnknownLocation is returned when a location id has no known coordinates.
var ErrUnknownLocation = errors.New("unknown location")

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// KnownLocations are the cities served without geocoding.
var KnownLocations = map[string]Coordinates{
	"almaty":    {Lat: 43.2565, Lon: 76.9285},
	"astana":    {Lat: 51.1694, Lon: 71.4491},
	"shymkent":  {Lat: 42.3417, Lon: 69.5901},
	"aktobe":    {Lat: 50.2833, Lon: 57.1667},
	"karaganda": {Lat: 49.8019, Lon: 73.1021},
	"aktau":     {Lat: 43.6416, Lon: 51.1717},
}

// NormalizeLocation lower-cases and trims a location id.
func NormalizeLocation(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Locator resolves location ids to coordinates. Known cities come from
// KnownLocations; anything else goes to the Google geocoder when an API key
// is configured. Geocoded results are memoized.
type Locator struct {
	geocode func(city string) (Coordinates, error)

	mu    sync.RWMutex
	cache map[string]Coordinates
}

// NewLocator creates a Locator. An empty apiKey disables geocoding.
func NewLocator(apiKey string) *Locator {
	l := &Locator{cache: make(map[string]Coordinates)}
	if apiKey != "" {
		geocoder.ApiKey = apiKey
		l.geocode = googleGeocode
	}
	return l
}

func googleGeocode(city string) (Coordinates, error) {
	loc, err := geocoder.Geocoding(geocoder.Address{City: city})
	if err != nil {
		return Coordinates{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	return Coordinates{Lat: loc.Latitude, Lon: loc.Longitude}, nil
}

// Resolve returns coordinates for a location id.
func (l *Locator) Resolve(locationID string) (Coordinates, error) {
	id := NormalizeLocation(locationID)
	if id == "" {
		return Coordinates{}, fmt.Errorf("%w: empty id", ErrUnknownLocation)
	}
	if c, ok := KnownLocations[id]; ok {
		return c, nil
	}

	l.mu.RLock()
	c, ok := l.cache[id]
	l.mu.RUnlock()
	if ok {
		return c, nil
	}

	if l.geocode == nil {
		return Coordinates{}, fmt.Errorf("%w: %s", ErrUnknownLocation, id)
	}
	c, err := l.geocode(id)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnknownLocation, err)
	}

	l.mu.Lock()
	l.cache[id] = c
	l.mu.Unlock()
	return c, nil
}
