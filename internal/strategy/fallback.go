package strategy

import (
	"strings"

	"github.com/i474232898/weather-station/internal/weather"
)

var fallbackReadings = map[string]weather.Reading{
	"almaty":    weather.NewReading(22, 65, 1010, 8, "Sunny"),
	"astana":    weather.NewReading(18, 70, 1015, 12, "Cloudy"),
	"shymkent":  weather.NewReading(26, 55, 1008, 6, "Clear"),
	"aktobe":    weather.NewReading(20, 60, 1012, 10, "Partly Cloudy"),
	"karaganda": weather.NewReading(16, 75, 1018, 8, "Overcast"),
	"aktau":     weather.NewReading(24, 65, 1011, 15, "Windy"),
}

// FallbackReading is the documented reading served for a location when the
// live source fails. Unknown locations get a generic clear day.
func FallbackReading(locationID string) weather.Reading {
	if r, ok := fallbackReadings[strings.ToLower(strings.TrimSpace(locationID))]; ok {
		return r
	}
	return weather.NewReading(20, 65, 1013, 5, "Clear")
}
