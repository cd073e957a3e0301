package weather

import (
	"fmt"
	"math"
)

// TemperatureBand labels a temperature. Bounds are strict, so 25.0 is "Warm".
func TemperatureBand(t float64) string {
	switch {
	case t > 25:
		return "Hot"
	case t > 15:
		return "Warm"
	case t > 5:
		return "Cool"
	default:
		return "Cold"
	}
}

// WindBand labels a wind speed in km/h. Bounds are strict, so 20.0 is "Breezy".
func WindBand(w float64) string {
	switch {
	case w > 20:
		return "Windy"
	case w > 10:
		return "Breezy"
	default:
		return "Calm"
	}
}

// Describe renders the human-readable summary used by generated readings,
// e.g. "Hot, Breezy (80% humidity)".
func Describe(temperature, humidity, windSpeed float64) string {
	return fmt.Sprintf("%s, %s (%.0f%% humidity)", TemperatureBand(temperature), WindBand(windSpeed), humidity)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Round1 rounds half away from zero to one decimal place. Results never
// carry a negative zero.
func Round1(v float64) float64 {
	return math.Round(v*10)/10 + 0
}

// Normalize clamps every numeric field to its domain and rounds temperature,
// humidity and wind speed to one decimal and pressure to a whole hPa.
// The description is left untouched.
func (r Reading) Normalize() Reading {
	return Reading{
		Temperature: Round1(Clamp(r.Temperature, MinTemperature, MaxTemperature)),
		Humidity:    Round1(Clamp(r.Humidity, MinHumidity, MaxHumidity)),
		Pressure:    math.Round(Clamp(r.Pressure, MinPressure, MaxPressure)),
		WindSpeed:   Round1(Clamp(r.WindSpeed, MinWindSpeed, MaxWindSpeed)),
		Description: r.Description,
	}
}
