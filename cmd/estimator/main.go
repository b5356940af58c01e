package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/trailplan/flight-estimator/internal/cache/redisstore"
	"github.com/trailplan/flight-estimator/internal/core/config"
	"github.com/trailplan/flight-estimator/internal/core/httpclient"
	"github.com/trailplan/flight-estimator/internal/core/observability"
	"github.com/trailplan/flight-estimator/internal/core/server"
	"github.com/trailplan/flight-estimator/internal/events"
	"github.com/trailplan/flight-estimator/internal/geo"
	"github.com/trailplan/flight-estimator/internal/geo/geocache"
	"github.com/trailplan/flight-estimator/internal/logger"
	"github.com/trailplan/flight-estimator/internal/pricing"
	"github.com/trailplan/flight-estimator/internal/season"
)

var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.FromEnv()

	zl := logger.Build(logger.Config{
		Level:     cfg.LogLevel,
		Console:   strings.ToLower(os.Getenv("LOG_CONSOLE")) == "true",
		Component: "estimator",
	}, os.Stdout)

	appLog := logger.NewSlog(&zl)

	observability.ExposeBuildInfo(Version)
	appLog.Info("starting estimator",
		"addr", cfg.Addr,
		"version", Version,
		"nominatim", cfg.NominatimURL,
		"redis", cfg.RedisAddr != "",
		"events", cfg.Events.Enabled)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := httpclient.NewOutbound()

	geocoder, err := geo.NewClient(appLog, httpClient, cfg.NominatimURL, cfg.NominatimUserAgent, cfg.NominatimTimeout)
	if err != nil {
		appLog.Error("failed to initialize geocoder", "err", err)
		return 1
	}

	var shared *geocache.Redis
	if cfg.RedisAddr != "" {
		store, err := redisstore.New(ctx, cfg.RedisAddr)
		if err != nil {
			appLog.Error("redis connect failed", "err", err, "addr", cfg.RedisAddr)
			return 1
		}
		defer func() { _ = store.Close() }()
		shared = geocache.NewRedis(store, cfg.CacheOpTimeout)
	}

	gate := geo.NewGate(cfg.GeocodeMinInterval)
	resolver := geo.NewResolver(appLog, geocoder, gate, geo.Options{
		Shared:            shared,
		NegativeCacheSize: cfg.NegativeCacheSize,
	})

	var sink pricing.Sink
	if cfg.Events.Enabled {
		pub, err := events.NewPublisher(appLog, cfg.Events.Brokers, cfg.Events.Topic, cfg.Events.CellRes)
		if err != nil {
			appLog.Error("event publisher setup failed", "err", err)
			return 1
		}
		defer func() { _ = pub.Close() }()
		sink = pub
	}

	engine := pricing.New(appLog, resolver, season.NewTable(), sink)

	readiness := func() (bool, []string) {
		return resolver.Readiness(context.Background())
	}

	if err := server.Run(ctx, cfg, appLog, engine, readiness); err != nil {
		appLog.Error("server exited with error", "err", err)
		return 1
	}
	appLog.Info("server stopped")
	return 0
}
