package geo

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestGate_FirstCallPassesImmediately(t *testing.T) {
	g := NewGate(time.Second)

	start := time.Now()
	if err := g.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("first call should not wait, took %v", elapsed)
	}
}

func TestGate_BackToBackCallsAreSpaced(t *testing.T) {
	const interval = 50 * time.Millisecond
	g := NewGate(interval)

	if err := g.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	start := time.Now()
	if err := g.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < interval-5*time.Millisecond {
		t.Fatalf("second call passed after %v, want >= %v", elapsed, interval)
	}
}

func TestGate_ConcurrentCallersSerialize(t *testing.T) {
	const interval = 30 * time.Millisecond
	g := NewGate(interval)

	var (
		mu    sync.Mutex
		times []time.Time
		wg    sync.WaitGroup
	)
	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := g.Wait(context.Background()); err != nil {
				t.Errorf("Wait: %v", err)
				return
			}
			mu.Lock()
			times = append(times, time.Now())
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(times) != 3 {
		t.Fatalf("expected 3 passes, got %d", len(times))
	}
	for i := 1; i < len(times); i++ {
		for j := 0; j < i; j++ {
			gap := times[i].Sub(times[j])
			if gap < 0 {
				gap = -gap
			}
			if gap < interval-5*time.Millisecond {
				t.Fatalf("passes %d and %d only %v apart, want >= %v", j, i, gap, interval)
			}
		}
	}
}

func TestGate_CancelledWhileWaiting(t *testing.T) {
	g := NewGate(time.Minute)

	if err := g.Wait(context.Background()); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := g.Wait(ctx); err == nil {
		t.Fatalf("expected context error while waiting out a one-minute interval")
	}
}
