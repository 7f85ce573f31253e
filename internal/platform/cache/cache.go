// Package cache provides a bounded in-memory cache with oldest-inserted
// eviction. A cache instance is owned by a single run and handed to the
// scheduler, never shared across runs.
package cache

import (
	"container/list"
	"sync"
)

// Cache is the interface the scheduler consumes.
type Cache interface {
	// Get retrieves a value. Returns the value and true if present.
	Get(key string) (interface{}, bool)

	// Set stores a value. When the cache is full the oldest-inserted
	// entry is evicted first. Overwriting a key keeps its insertion slot.
	Set(key string, value interface{})

	// Delete removes a key.
	Delete(key string)

	// Clear removes every entry.
	Clear()

	// Size returns the current number of entries.
	Size() int

	// Capacity returns the maximum number of entries.
	Capacity() int
}

type entry struct {
	key     string
	value   interface{}
	element *list.Element // insertion-order tracking
}

// BoundedCache implements Cache with FIFO eviction.
type BoundedCache struct {
	mu       sync.RWMutex
	capacity int
	items    map[string]*entry
	order    *list.List // front = oldest inserted
}

// NewBounded creates a cache holding at most capacity entries.
func NewBounded(capacity int) *BoundedCache {
	if capacity <= 0 {
		capacity = 100
	}
	return &BoundedCache{
		capacity: capacity,
		items:    make(map[string]*entry),
		order:    list.New(),
	}
}

// Get retrieves a value without touching insertion order.
func (c *BoundedCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Set stores a value, evicting the oldest-inserted entry when full.
func (c *BoundedCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[key]; ok {
		existing.value = value
		return
	}

	if len(c.items) >= c.capacity {
		c.evictOldest()
	}

	e := &entry{key: key, value: value}
	e.element = c.order.PushBack(e)
	c.items[key] = e
}

// Delete removes a key.
func (c *BoundedCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok {
		c.removeEntry(e)
	}
}

// Clear removes every entry.
func (c *BoundedCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*entry)
	c.order.Init()
}

// Size returns the current number of entries.
func (c *BoundedCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Capacity returns the maximum number of entries.
func (c *BoundedCache) Capacity() int {
	return c.capacity
}

// Keys returns all keys in insertion order (oldest first).
func (c *BoundedCache) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for el := c.order.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Value.(*entry).key)
	}
	return keys
}

// evictOldest removes the oldest-inserted entry. Must hold c.mu.
func (c *BoundedCache) evictOldest() {
	el := c.order.Front()
	if el == nil {
		return
	}
	c.removeEntry(el.Value.(*entry))
}

// removeEntry must be called with c.mu held.
func (c *BoundedCache) removeEntry(e *entry) {
	delete(c.items, e.key)
	c.order.Remove(e.element)
}
