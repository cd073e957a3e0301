package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Strategy names accepted by INITIAL_STRATEGY.
const (
	StrategyRealtime  = "realtime"
	StrategySimulated = "simulated"
	StrategyScheduled = "scheduled"
	StrategyManual    = "manual"
)

type AppConfig struct {
	AppEnv   string
	LogLevel slog.Level
	Port     string

	OpenWeatherAPIKey string
	WeatherAPIKey     string
	GeocoderAPIKey    string

	// Location is the default location id for live and scheduled strategies.
	Location string

	// InitialStrategy is installed on the station at startup.
	InitialStrategy string

	// RefreshInterval controls how often the station refreshes (0 = disabled).
	RefreshInterval time.Duration

	// HTTPTimeout bounds outbound provider calls.
	HTTPTimeout time.Duration

	ProviderRPS   float64
	ProviderBurst int
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}
	cfg := &AppConfig{}

	cfg.AppEnv = getenvDefault("APP_ENV", "dev")
	switch cfg.AppEnv {
	case "dev", "prod":
	default:
		return nil, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", cfg.AppEnv)
	}

	level, err := parseLogLevel(getenvDefault("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}
	cfg.LogLevel = level
	cfg.Port = getenvDefault("PORT", "8080")

	cfg.OpenWeatherAPIKey = os.Getenv("OPENWEATHER_API_KEY")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.GeocoderAPIKey = os.Getenv("GEOCODER_API_KEY")

	cfg.Location = strings.ToLower(getenvDefault("WEATHER_LOCATION", "almaty"))

	cfg.InitialStrategy = strings.ToLower(getenvDefault("INITIAL_STRATEGY", StrategySimulated))
	switch cfg.InitialStrategy {
	case StrategyRealtime, StrategySimulated, StrategyScheduled, StrategyManual:
	default:
		return nil, fmt.Errorf("invalid INITIAL_STRATEGY %q", cfg.InitialStrategy)
	}

	// Refresh interval: default 15 minutes.
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "15m"); err != nil {
		return nil, err
	}
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "10s"); err != nil {
		return nil, err
	}

	rps := getenvDefault("PROVIDER_RPS", "1")
	cfg.ProviderRPS, err = strconv.ParseFloat(rps, 64)
	if err != nil || cfg.ProviderRPS <= 0 {
		return nil, fmt.Errorf("invalid PROVIDER_RPS %q", rps)
	}

	burst := getenvDefault("PROVIDER_BURST", "5")
	cfg.ProviderBurst, err = strconv.Atoi(burst)
	if err != nil || cfg.ProviderBurst <= 0 {
		return nil, fmt.Errorf("invalid PROVIDER_BURST %q", burst)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	v := getenvDefault(key, def)
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s: negative duration %s", key, v)
	}
	return d, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
