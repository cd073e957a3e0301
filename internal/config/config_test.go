package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "LOG_LEVEL", "PORT", "WEATHER_LOCATION", "INITIAL_STRATEGY",
		"REFRESH_INTERVAL", "HTTP_TIMEOUT", "PROVIDER_RPS", "PROVIDER_BURST"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppEnv != "dev" || cfg.LogLevel != slog.LevelInfo || cfg.Port != "8080" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.Location != "almaty" || cfg.InitialStrategy != StrategySimulated {
		t.Fatalf("unexpected station defaults %+v", cfg)
	}
	if cfg.RefreshInterval != 15*time.Minute || cfg.HTTPTimeout != 10*time.Second {
		t.Fatalf("unexpected durations %+v", cfg)
	}
	if cfg.ProviderRPS != 1 || cfg.ProviderBurst != 5 {
		t.Fatalf("unexpected rate limit %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("WEATHER_LOCATION", "Astana")
	t.Setenv("INITIAL_STRATEGY", "Realtime")
	t.Setenv("REFRESH_INTERVAL", "0")
	t.Setenv("PROVIDER_RPS", "0.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.AppEnv != "prod" || cfg.LogLevel != slog.LevelWarn {
		t.Fatalf("unexpected env/level %+v", cfg)
	}
	if cfg.Location != "astana" || cfg.InitialStrategy != StrategyRealtime {
		t.Fatalf("unexpected station config %+v", cfg)
	}
	if cfg.RefreshInterval != 0 || cfg.ProviderRPS != 0.5 {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"APP_ENV":          "staging",
		"LOG_LEVEL":        "loud",
		"INITIAL_STRATEGY": "psychic",
		"REFRESH_INTERVAL": "soon",
		"HTTP_TIMEOUT":     "-1s",
		"PROVIDER_RPS":     "zero",
		"PROVIDER_BURST":   "0",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", key, value)
			}
		})
	}
}
