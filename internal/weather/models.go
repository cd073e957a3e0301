package weather

import "fmt"

// Condition represents a normalized high-level weather condition.
type Condition string

const (
	ConditionUnknown Condition = "unknown"
	ConditionClear   Condition = "clear"
	ConditionCloudy  Condition = "cloudy"
	ConditionRain    Condition = "rain"
	ConditionSnow    Condition = "snow"
	ConditionStorm   Condition = "storm"
	ConditionMist    Condition = "mist"
)

// Domain bounds for reading fields.
const (
	MinTemperature = -60.0
	MaxTemperature = 60.0
	MinHumidity    = 0.0
	MaxHumidity    = 100.0
	MinPressure    = 870.0
	MaxPressure    = 1085.0
	MinWindSpeed   = 0.0
	MaxWindSpeed   = 150.0
)

// Reading is a single weather snapshot. It is a value type: a stored reading
// is only ever replaced, never edited in place.
type Reading struct {
	Temperature float64 `json:"temperature" validate:"gte=-60,lte=60"` // °C
	Humidity    float64 `json:"humidity" validate:"gte=0,lte=100"`     // %
	Pressure    float64 `json:"pressure" validate:"gte=870,lte=1085"`  // hPa
	WindSpeed   float64 `json:"windSpeed" validate:"gte=0,lte=150"`    // km/h
	Description string  `json:"description"`
}

// NewReading builds a Reading from its five fields.
func NewReading(temperature, humidity, pressure, windSpeed float64, description string) Reading {
	return Reading{
		Temperature: temperature,
		Humidity:    humidity,
		Pressure:    pressure,
		WindSpeed:   windSpeed,
		Description: description,
	}
}

// DefaultReading is the value a station holds before its first refresh.
func DefaultReading() Reading {
	return NewReading(20.0, 65.0, 1013.0, 5.0, "Initial")
}

func (r Reading) String() string {
	return fmt.Sprintf("Temperature: %.1fC | Humidity: %.1f%% | Pressure: %.1fhPa | Wind: %.1fkm/h | %s",
		r.Temperature, r.Humidity, r.Pressure, r.WindSpeed, r.Description)
}
