// Package cache provides a bounded in-memory LRU cache with optional expiry.
//
// The most recently used entries sit at the front of the eviction list. When
// MaxEntries is reached, the entry at the back is dropped. Expired entries
// are removed lazily, on access:
//
//	c := cache.New[*pages.Page](
//	    cache.WithMaxEntries(512),
//	    cache.WithTTL(10 * time.Minute),
//	)
//	c.Set("products/lamp", p)
//	p, ok := c.Get("products/lamp")
//
// An LRU is safe for concurrent use.
package cache
