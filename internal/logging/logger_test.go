package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/i474232898/weather-station/internal/config"
)

func TestProdLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, &config.AppConfig{AppEnv: "prod", LogLevel: slog.LevelInfo}, "weather-station")

	logger.Debug("hidden")
	logger.Info("weather refreshed", "strategy", "Simulated")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("expected a single JSON record, got %q: %v", buf.String(), err)
	}
	if rec["app"] != "weather-station" || rec["env"] != "prod" || rec["strategy"] != "Simulated" {
		t.Fatalf("unexpected record %v", rec)
	}
}

func TestDevLoggerUsesTint(t *testing.T) {
	var buf bytes.Buffer
	logger := newWithWriter(&buf, &config.AppConfig{AppEnv: "dev", LogLevel: slog.LevelDebug}, "weather-station")

	logger.Debug("observer added", "observer", "Dashboard")
	out := buf.String()
	if !strings.Contains(out, "observer added") || !strings.Contains(out, "Dashboard") {
		t.Fatalf("unexpected output %q", out)
	}
	if json.Valid(buf.Bytes()) {
		t.Fatalf("dev output should not be JSON: %q", out)
	}
}
