package data

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type cacheEntry struct {
	series  PriceSeries
	expires time.Time
}

// Cached wraps a Provider with an in-memory TTL cache. A singleflight.Group
// collapses concurrent fetches of the same symbol and range into one call.
type Cached struct {
	inner Provider
	ttl   time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	group   singleflight.Group

	now func() time.Time
}

func NewCached(inner Provider, ttl time.Duration) *Cached {
	return &Cached{
		inner:   inner,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cached) FetchAdjustedClose(ctx context.Context, symbol string, start, end time.Time) (PriceSeries, error) {
	key := fmt.Sprintf("%s|%s|%s", symbol, start.Format(Layout), end.Format(Layout))
	if s, ok := c.get(key); ok {
		return s, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if s, ok := c.get(key); ok {
			return s, nil
		}
		s, err := c.inner.FetchAdjustedClose(ctx, symbol, start, end)
		if err != nil {
			return PriceSeries{}, err
		}
		c.mu.Lock()
		c.entries[key] = cacheEntry{series: s, expires: c.now().Add(c.ttl)}
		c.mu.Unlock()
		return s, nil
	})
	if err != nil {
		return PriceSeries{}, err
	}
	return clone(v.(PriceSeries)), nil
}

func (c *Cached) get(key string) (PriceSeries, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		return PriceSeries{}, false
	}
	return clone(e.series), true
}

func clone(s PriceSeries) PriceSeries {
	points := make([]PricePoint, len(s.Points))
	copy(points, s.Points)
	return PriceSeries{Symbol: s.Symbol, Points: points}
}
