package cache

import "time"

// Option configures an LRU.
type Option[V any] func(*LRU[V])

// WithMaxEntries bounds the number of entries. Zero means unlimited.
// Default: 0.
func WithMaxEntries[V any](n int) Option[V] {
	return func(c *LRU[V]) {
		c.maxEntries = max(n, 0)
	}
}

// WithTTL sets how long an entry stays valid after Set. Zero disables expiry.
// Default: 0.
func WithTTL[V any](d time.Duration) Option[V] {
	return func(c *LRU[V]) {
		c.ttl = max(d, 0)
	}
}

// WithClock replaces time.Now.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *LRU[V]) {
		if now != nil {
			c.now = now
		}
	}
}

// WithEvictCallback registers fn for entries dropped by capacity or expiry.
// It runs with the cache locked and must not call back into it.
func WithEvictCallback[V any](fn func(key string, value V)) Option[V] {
	return func(c *LRU[V]) {
		c.onEvict = fn
	}
}
