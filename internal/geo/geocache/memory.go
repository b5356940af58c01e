// Package geocache holds the cache tiers backing the geo resolver.
package geocache

import (
	"sync"

	"github.com/trailplan/flight-estimator/internal/core/model"
)

// Memory is the session cache: exact-string keyed, lives for the process
// lifetime, never evicted. Unbounded growth is accepted at this tool's scale.
type Memory struct {
	mu sync.RWMutex
	m  map[string]model.Coordinate
}

func NewMemory() *Memory {
	return &Memory{m: make(map[string]model.Coordinate)}
}

func (c *Memory) Get(location string) (model.Coordinate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	coord, ok := c.m[location]
	return coord, ok
}

func (c *Memory) Set(location string, coord model.Coordinate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[location] = coord
}

func (c *Memory) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}
