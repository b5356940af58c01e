package geocache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/trailplan/flight-estimator/internal/cache/redisstore"
	"github.com/trailplan/flight-estimator/internal/core/model"
)

// Redis is the optional shared tier sitting between the gazetteer and the
// external geocoder. Entries are written without TTL; the geocode result for
// a given input string does not go stale.
type Redis struct {
	cli     *redisstore.Client
	timeout time.Duration
}

func NewRedis(cli *redisstore.Client, opTimeout time.Duration) *Redis {
	return &Redis{cli: cli, timeout: opTimeout}
}

func (r *Redis) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *Redis) Get(ctx context.Context, location string) (model.Coordinate, bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, found, err := r.cli.Get(ctx, Key(location))
	if err != nil {
		return model.Coordinate{}, false, fmt.Errorf("shared cache get: %w", err)
	}
	if !found {
		return model.Coordinate{}, false, nil
	}

	var coord model.Coordinate
	if err := json.Unmarshal(raw, &coord); err != nil {
		// treat a corrupt entry as a miss rather than failing the lookup
		return model.Coordinate{}, false, nil
	}
	return coord, true, nil
}

func (r *Redis) Set(ctx context.Context, location string, coord model.Coordinate) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	raw, err := json.Marshal(coord)
	if err != nil {
		return fmt.Errorf("marshal coordinate: %w", err)
	}
	if err := r.cli.Set(ctx, Key(location), raw, 0); err != nil {
		return fmt.Errorf("shared cache set: %w", err)
	}
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	return r.cli.Ping(ctx)
}
