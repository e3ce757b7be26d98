// Package cache contains building blocks for caches backed by the list
// package.
//
// The types here are deliberately unsynchronized: locking strategies are
// application specific, so callers that share a cache between goroutines must
// wrap it themselves.
package cache

// Interface is the interface implemented by caches.
type Interface[K comparable, V any] interface {
	// Returns the number of entries in the cache.
	Len() int

	// Inserts an entry, returning the value previously associated with the
	// key if there was one.
	Insert(key K, value V) (previous V, replaced bool)

	// Returns the value associated with the key.
	Lookup(key K) (value V, found bool)

	// Deletes the entry associated with the key.
	Delete(key K) (value V, deleted bool)

	// Evicts one entry, chosen by the caching strategy.
	Evict() (key K, value V, evicted bool)

	// Calls f for each entry until f returns false. The visit order is
	// unspecified.
	Range(f func(K, V) bool)
}

// Stats contains counters tracking usage of a cache.
type Stats struct {
	Inserts   int64
	Updates   int64
	Deletes   int64
	Lookups   int64
	Hits      int64
	Evictions int64
}

// Cache decorates a caching implementation with usage counters. The zero
// value is ready to use and defaults to a LRU backend on first insert.
type Cache[K comparable, V any] struct {
	stats   Stats
	backend Interface[K, V]
}

// Init resets the counters and installs backend as the caching strategy.
func (c *Cache[K, V]) Init(backend Interface[K, V]) {
	c.stats = Stats{}
	c.backend = backend
}

func (c *Cache[K, V]) Len() int {
	if c.backend == nil {
		return 0
	}
	return c.backend.Len()
}

func (c *Cache[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if c.backend == nil {
		c.backend = new(LRU[K, V])
	}
	previous, replaced = c.backend.Insert(key, value)
	if replaced {
		c.stats.Updates++
	} else {
		c.stats.Inserts++
	}
	return previous, replaced
}

func (c *Cache[K, V]) Lookup(key K) (value V, found bool) {
	if c.backend != nil {
		value, found = c.backend.Lookup(key)
		c.stats.Lookups++
		if found {
			c.stats.Hits++
		}
	}
	return value, found
}

func (c *Cache[K, V]) Delete(key K) (value V, deleted bool) {
	if c.backend != nil {
		value, deleted = c.backend.Delete(key)
		if deleted {
			c.stats.Deletes++
		}
	}
	return value, deleted
}

func (c *Cache[K, V]) Evict() (key K, value V, evicted bool) {
	if c.backend != nil {
		key, value, evicted = c.backend.Evict()
		if evicted {
			c.stats.Evictions++
		}
	}
	return key, value, evicted
}

func (c *Cache[K, V]) Range(f func(K, V) bool) {
	if c.backend != nil {
		c.backend.Range(f)
	}
}

// Stats returns a snapshot of the usage counters.
func (c *Cache[K, V]) Stats() Stats { return c.stats }
