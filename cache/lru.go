package cache

import "github.com/omar-hanafy/doubly-linked-list/list"

// LRU is an Interface implementation which evicts the least recently used
// entry.
//
// Entries live in a queue ordered by recency of use, most recent at the
// front. The index maps each key to the node handle returned when the entry
// was enqueued, so hits and deletes reposition or unlink the entry in O(1)
// without walking the queue.
type LRU[K comparable, V any] struct {
	index map[K]*list.Node[entry[K, V]]
	queue list.List[entry[K, V]]
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

func (lru *LRU[K, V]) Len() int {
	return lru.queue.Len()
}

func (lru *LRU[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if n, ok := lru.index[key]; ok {
		// Rewriting the value through the handle is not structural; only the
		// refresh of the entry's position is.
		previous, replaced = n.Value.value, true
		n.Value.value = value
		lru.queue.MoveToFront(n)
		return previous, replaced
	}
	if lru.index == nil {
		lru.index = make(map[K]*list.Node[entry[K, V]])
	}
	lru.index[key] = lru.queue.Prepend(entry[K, V]{key: key, value: value})
	return previous, false
}

func (lru *LRU[K, V]) Lookup(key K) (value V, found bool) {
	n, ok := lru.index[key]
	if ok {
		lru.queue.MoveToFront(n)
		value, found = n.Value.value, true
	}
	return value, found
}

func (lru *LRU[K, V]) Delete(key K) (value V, deleted bool) {
	n, ok := lru.index[key]
	if ok {
		delete(lru.index, key)
		value, deleted = lru.queue.Unlink(n).value, true
	}
	return value, deleted
}

func (lru *LRU[K, V]) Evict() (key K, value V, evicted bool) {
	if n := lru.queue.Back(); n != nil {
		e := lru.queue.Unlink(n)
		delete(lru.index, e.key)
		key, value, evicted = e.key, e.value, true
	}
	return key, value, evicted
}

func (lru *LRU[K, V]) Range(f func(K, V) bool) {
	lru.queue.Range(func(e entry[K, V]) bool {
		return f(e.key, e.value)
	})
}
