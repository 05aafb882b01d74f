package cache

import (
	"container/list"
	"sync"
	"time"
)

type entry[V any] struct {
	expiresAt time.Time // zero value = never expires
	value     V
	key       string
}

// LRU is an in-memory cache with LRU eviction and optional expiry.
type LRU[V any] struct {
	items      map[string]*list.Element
	order      *list.List
	now        func() time.Time
	onEvict    func(key string, value V)
	ttl        time.Duration
	maxEntries int
	mu         sync.Mutex
}

// New creates an empty cache.
func New[V any](opts ...Option[V]) *LRU[V] {
	c := &LRU[V]{
		items: make(map[string]*list.Element),
		order: list.New(),
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the value of key and marks it recently used.
func (c *LRU[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}

	e := elem.Value.(*entry[V])
	if c.expired(e) {
		c.evict(elem)
		var zero V
		return zero, false
	}

	c.order.MoveToFront(elem)
	return e.value, true
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = c.now().Add(c.ttl)
	}

	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.expiresAt = expiresAt
		c.order.MoveToFront(elem)
		return
	}

	if c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		if oldest := c.order.Back(); oldest != nil {
			c.evict(oldest)
		}
	}

	c.items[key] = c.order.PushFront(&entry[V]{key: key, value: value, expiresAt: expiresAt})
}

// Delete removes the given keys. The evict callback is not called.
func (c *LRU[V]) Delete(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, k := range keys {
		if elem, ok := c.items[k]; ok {
			c.order.Remove(elem)
			delete(c.items, k)
		}
	}
}

// Clear removes every entry.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	clear(c.items)
	c.order.Init()
}

// Len returns the number of entries, expired ones included.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the keys from most to least recently used.
func (c *LRU[V]) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]string, 0, len(c.items))
	for elem := c.order.Front(); elem != nil; elem = elem.Next() {
		keys = append(keys, elem.Value.(*entry[V]).key)
	}
	return keys
}

func (c *LRU[V]) expired(e *entry[V]) bool {
	return !e.expiresAt.IsZero() && c.now().After(e.expiresAt)
}

// evict removes elem and reports it. Caller must hold the mutex.
func (c *LRU[V]) evict(elem *list.Element) {
	c.order.Remove(elem)
	e := elem.Value.(*entry[V])
	delete(c.items, e.key)

	if c.onEvict != nil {
		c.onEvict(e.key, e.value)
	}
}
