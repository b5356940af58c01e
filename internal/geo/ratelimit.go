package geo

import (
	"context"
	"sync"
	"time"

	"github.com/trailplan/flight-estimator/internal/core/observability"
)

// Gate enforces a process-wide minimum interval between outbound geocoder
// calls. All callers pass through the one mutex; a caller arriving early
// sleeps out the remaining interval while still holding the lock, so
// concurrent lookups serialize instead of racing for the same slot.
type Gate struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time // for tests
}

func NewGate(interval time.Duration) *Gate {
	return &Gate{interval: interval, now: time.Now}
}

// Wait blocks until the interval since the previous outbound call has
// elapsed, then claims the slot. Returns early with the context error if the
// caller is cancelled while waiting.
func (g *Gate) Wait(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	if g.last.IsZero() || now.Sub(g.last) >= g.interval {
		g.last = now
		observability.ObserveRateGateWait(0)
		return nil
	}

	wait := g.interval - now.Sub(g.last)
	observability.ObserveRateGateWait(wait.Seconds())

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
	}

	g.last = g.now()
	return nil
}
