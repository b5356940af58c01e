// Package geo resolves free-text location names to coordinates through a
// layered lookup chain: session cache, bundled gazetteer, optional shared
// Redis tier, then a rate-gated external geocoder.
package geo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trailplan/flight-estimator/internal/core/model"
	"github.com/trailplan/flight-estimator/internal/core/observability"
	"github.com/trailplan/flight-estimator/internal/geo/gazetteer"
	"github.com/trailplan/flight-estimator/internal/geo/geocache"
)

type Options struct {
	// Shared enables the Redis tier between the gazetteer and the external
	// call. May be nil.
	Shared *geocache.Redis
	// NegativeCacheSize bounds the remembered not-found inputs.
	NegativeCacheSize int
}

// Resolver owns the cache map and the limiter state explicitly; one instance
// is constructed per process and passed to the pricing engine.
type Resolver struct {
	logger *slog.Logger
	mem    *geocache.Memory
	shared *geocache.Redis
	gate   *Gate
	client *Client
	neg    *lru.Cache[string, struct{}]
}

func NewResolver(logger *slog.Logger, client *Client, gate *Gate, opts Options) *Resolver {
	size := opts.NegativeCacheSize
	if size <= 0 {
		size = 1024
	}
	neg, _ := lru.New[string, struct{}](size)
	return &Resolver{
		logger: logger,
		mem:    geocache.NewMemory(),
		shared: opts.Shared,
		gate:   gate,
		client: client,
		neg:    neg,
	}
}

// Resolve walks the lookup chain; the first hit wins and is written back to
// the session cache. Geocoder failures surface unmodified.
func (r *Resolver) Resolve(ctx context.Context, location string) (model.Coordinate, error) {
	if coord, ok := r.mem.Get(location); ok {
		observability.IncGeocodeHit("memory")
		return coord, nil
	}
	observability.IncGeocodeMiss("memory")

	if coord, ok := gazetteer.Lookup(location); ok {
		observability.IncGeocodeHit("gazetteer")
		r.mem.Set(location, coord)
		return coord, nil
	}
	observability.IncGeocodeMiss("gazetteer")

	if _, known := r.neg.Get(location); known {
		observability.IncGeocodeHit("negative")
		return model.Coordinate{}, &NotFoundError{Location: location}
	}

	if r.shared != nil {
		coord, found, err := r.shared.Get(ctx, location)
		switch {
		case err != nil:
			// the shared tier is best effort; fall through to the external call
			r.logger.Warn("shared cache read failed", "location", location, "err", err)
		case found:
			observability.IncGeocodeHit("shared")
			r.mem.Set(location, coord)
			return coord, nil
		default:
			observability.IncGeocodeMiss("shared")
		}
	}

	if err := r.gate.Wait(ctx); err != nil {
		return model.Coordinate{}, fmt.Errorf("rate gate: %w", err)
	}

	coord, err := r.client.Geocode(ctx, location)
	if err != nil {
		var nf *NotFoundError
		if errors.As(err, &nf) {
			r.neg.Add(location, struct{}{})
		}
		return model.Coordinate{}, err
	}

	observability.IncGeocodeHit("nominatim")
	r.mem.Set(location, coord)
	if r.shared != nil {
		if err := r.shared.Set(ctx, location, coord); err != nil {
			r.logger.Warn("shared cache write failed", "location", location, "err", err)
		}
	}
	return coord, nil
}

// CacheSize reports the session cache entry count.
func (r *Resolver) CacheSize() int { return r.mem.Len() }

// Readiness reports the active lookup tiers. The shared tier is listed only
// while reachable; its loss degrades the chain rather than the service.
func (r *Resolver) Readiness(ctx context.Context) (bool, []string) {
	tiers := []string{"memory", "gazetteer"}
	if r.shared != nil {
		if err := r.shared.Ping(ctx); err == nil {
			tiers = append(tiers, "shared")
		}
	}
	tiers = append(tiers, "nominatim")
	return true, tiers
}
