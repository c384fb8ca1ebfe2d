package cache

import (
	"strings"
	"sync"
	"time"
)

// DefaultTTL is used when Set is called without an explicit TTL.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value     any
	timestamp time.Time
	ttl       time.Duration
}

func (e entry) expired(now time.Time) bool {
	return now.Sub(e.timestamp) > e.ttl
}

// Stats is a point-in-time snapshot of cache counters.
type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// Cache is an in-process key/value store with per-entry expiration.
// Entries expire lazily on Get; Cleanup exists only to bound memory for
// keys that are written but never read again. A Cache is never a source
// of truth: a miss just means the caller refetches.
type Cache struct {
	mu         sync.RWMutex
	items      map[string]entry
	hits       int64
	misses     int64
	defaultTTL time.Duration
}

// New returns a Cache with the given default TTL; zero or negative
// falls back to DefaultTTL.
func New(defaultTTL time.Duration) *Cache {
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}
	return &Cache{
		items:      make(map[string]entry),
		defaultTTL: defaultTTL,
	}
}

// Set stores value under key, overwriting any existing entry. An explicit
// TTL overrides the cache default and is honored as given: zero or
// negative makes the entry stale immediately. Set never fails.
func (c *Cache) Set(key string, value any, ttl ...time.Duration) {
	d := c.defaultTTL
	if len(ttl) > 0 {
		d = ttl[0]
	}
	c.mu.Lock()
	c.items[key] = entry{value: value, timestamp: time.Now(), ttl: d}
	c.mu.Unlock()
}

// Get returns the value for key if present and fresh. An expired entry is
// evicted on the way out and reported as a miss.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	if e.expired(time.Now()) {
		c.mu.Lock()
		delete(c.items, key)
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()
	return e.value, true
}

// Clear removes every key containing the given substring, or every key
// when no pattern is supplied.
func (c *Cache) Clear(pattern ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(pattern) == 0 || pattern[0] == "" {
		c.items = make(map[string]entry)
		return
	}
	for k := range c.items {
		if strings.Contains(k, pattern[0]) {
			delete(c.items, k)
		}
	}
}

// Stats returns a copy of the cumulative hit/miss counters and the
// current entry count.
func (c *Cache) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Stats{Hits: c.hits, Misses: c.misses, Size: len(c.items)}
}

// Cleanup evicts every expired entry regardless of read access and
// returns how many were removed.
func (c *Cache) Cleanup() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()

	cleaned := 0
	for k, e := range c.items {
		if e.expired(now) {
			delete(c.items, k)
			cleaned++
		}
	}
	return cleaned
}
