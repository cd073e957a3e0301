package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/i474232898/weather-station/internal/api/http"
	"github.com/i474232898/weather-station/internal/config"
	"github.com/i474232898/weather-station/internal/logging"
	"github.com/i474232898/weather-station/internal/observer"
	"github.com/i474232898/weather-station/internal/scheduler"
	"github.com/i474232898/weather-station/internal/station"
	"github.com/i474232898/weather-station/internal/strategy"
	"github.com/i474232898/weather-station/internal/weather"
	"github.com/i474232898/weather-station/internal/weather/providers"
)

func main() {
	// Load configuration (.env first, then the environment).
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.New(cfg, httpapi.AppName)
	slog.SetDefault(logger)

	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"port", cfg.Port,
		"location", cfg.Location,
		"initialStrategy", cfg.InitialStrategy,
		"refreshInterval", cfg.RefreshInterval,
		"httpTimeout", cfg.HTTPTimeout,
	)

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	provider := buildProvider(cfg, httpClient, logger)

	strategies := strategy.NewBuilder(provider, cfg.Location,
		strategy.WithLogger(logger),
		strategy.WithTimeout(cfg.HTTPTimeout),
	)

	st := station.New(logger)
	for _, f := range []observer.Factory{
		observer.MobileFactory(logger),
		observer.WebFactory(logger),
		observer.SmartHomeFactory(logger),
	} {
		st.AddObserver(f.CreateDisplay())
		st.AddObserver(f.CreateNotifier())
	}

	initial, err := strategies.ByName(cfg.InitialStrategy, "")
	if err != nil {
		logger.Error("failed to build initial strategy", "error", err)
		os.Exit(1)
	}
	st.SetStrategy(initial)

	// Scheduler that periodically refreshes the station. gocron runs the
	// first job immediately, so the station is warm shortly after start.
	sched := scheduler.New(st, cfg.RefreshInterval, 2*cfg.HTTPTimeout, logger)
	if err := sched.Start(); err != nil {
		logger.Error("failed to start scheduler", "error", err)
		os.Exit(1)
	}
	defer sched.Stop()

	app := httpapi.NewApp(true)
	httpapi.RegisterRoutes(app, st, strategies)

	go func() {
		logger.Info("http listening", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			logger.Error("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Error("error during shutdown", "error", err)
	}
}

// buildProvider assembles the live data source: every configured provider,
// rate limited, queried together.
func buildProvider(cfg *config.AppConfig, client *http.Client, logger *slog.Logger) weather.Provider {
	locator := providers.NewLocator(cfg.GeocoderAPIKey)

	var provs []weather.Provider
	if cfg.OpenWeatherAPIKey != "" {
		provs = append(provs, providers.NewOpenWeatherProvider(client, cfg.OpenWeatherAPIKey, providers.WithLocator(locator)))
	}
	if cfg.WeatherAPIKey != "" {
		provs = append(provs, providers.NewWeatherAPIProvider(client, cfg.WeatherAPIKey, providers.WithLocator(locator)))
	}
	// Open-Meteo needs no key; it serves any location the locator resolves.
	provs = append(provs, providers.NewOpenMeteoProvider(client, providers.WithLocator(locator)))

	limited := make([]weather.Provider, 0, len(provs))
	for _, p := range provs {
		limited = append(limited, providers.NewRateLimitedProvider(p, cfg.ProviderRPS, cfg.ProviderBurst))
	}

	mp := weather.NewMultiProvider(logger, limited...)
	logger.Info("weather providers configured", "provider", mp.Name(), "count", mp.Len())
	return mp
}
