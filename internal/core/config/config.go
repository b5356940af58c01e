package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type EventsCfg struct {
	Enabled bool
	Brokers string
	Topic   string
	CellRes int
}

type Config struct {
	Addr     string
	LogLevel string

	NominatimURL       string
	NominatimUserAgent string
	NominatimTimeout   time.Duration
	GeocodeMinInterval time.Duration

	RedisAddr      string
	CacheOpTimeout time.Duration

	NegativeCacheSize int

	Events EventsCfg
}

func FromEnv() Config {
	return Config{
		Addr:     getenv("ADDR", ":8080"),
		LogLevel: getenv("LOG_LEVEL", "info"),

		NominatimURL:       getenv("NOMINATIM_URL", "https://nominatim.openstreetmap.org/search"),
		NominatimUserAgent: getenv("NOMINATIM_USER_AGENT", "TripPlanner/1.0 (https://trail-plan.vercel.app)"),
		NominatimTimeout:   getduration("NOMINATIM_TIMEOUT", 10*time.Second),
		GeocodeMinInterval: getduration("GEOCODE_MIN_INTERVAL", time.Second),

		RedisAddr:      getenv("REDIS_ADDR", ""),
		CacheOpTimeout: getduration("CACHE_OP_TIMEOUT", 250*time.Millisecond),

		NegativeCacheSize: getint("NEGATIVE_CACHE_SIZE", 1024),

		Events: EventsCfg{
			Enabled: getbool("EVENTS_ENABLED", false),
			Brokers: getenv("KAFKA_BROKERS", "localhost:9092"),
			Topic:   getenv("KAFKA_TOPIC", "flight-estimates"),
			CellRes: getint("EVENT_CELL_RES", 5),
		},
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getbool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "t", "true", "y", "yes":
			return true
		case "0", "f", "false", "n", "no":
			return false
		}
	}
	return def
}

func getduration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
