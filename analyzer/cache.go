package analyzer

import (
	"container/list"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"sync"
)

// DefaultCacheCapacity is the number of results kept when no capacity is configured.
const DefaultCacheCapacity = 50

type cacheEntry struct {
	key    string
	result AnalysisResult
}

// ResultCache is a bounded, insertion-ordered (FIFO) result store.
// Reads never reorder entries; when full, the earliest inserted entry is evicted.
// Entries are write-once: adding an existing key keeps the stored result, and
// results are copied on the way in and out so callers cannot change them.
type ResultCache struct {
	mu        sync.Mutex
	capacity  int
	order     *list.List
	entries   map[string]*list.Element
	hits      int
	misses    int
	evictions int
}

// NewResultCache creates a cache holding at most capacity results.
func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &ResultCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns a copy of the stored result for key.
func (c *ResultCache) Get(key string) (AnalysisResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		return AnalysisResult{}, false
	}
	c.hits++
	return el.Value.(*cacheEntry).result.clone(), true
}

// Add stores result under key, evicting the earliest entry if the cache is full.
// It reports whether an eviction happened.
func (c *ResultCache) Add(key string, result AnalysisResult) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return false
	}
	if c.order.Len() >= c.capacity {
		oldest := c.order.Front()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
		c.evictions++
		evicted = true
	}
	c.entries[key] = c.order.PushBack(&cacheEntry{key: key, result: result.clone()})
	return evicted
}

// Contains reports whether key is cached without counting a hit or miss.
func (c *ResultCache) Contains(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}

// Clear drops every entry. Counters are kept.
func (c *ResultCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	c.entries = make(map[string]*list.Element, c.capacity)
}

// Len returns the number of cached results.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Capacity returns the maximum number of cached results.
func (c *ResultCache) Capacity() int {
	return c.capacity
}

// Stats returns occupancy and counters.
func (c *ResultCache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Entries:   c.order.Len(),
		Capacity:  c.capacity,
		Usage:     float64(c.order.Len()) * 100 / float64(c.capacity),
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
	}
}

// Fingerprint creates a stable cache key for a validated snapshot.
func Fingerprint(snapshot ContentSnapshot) string {
	// Struct fields marshal in declaration order, so the encoding is canonical.
	data, _ := json.Marshal(snapshot)
	hash := md5.Sum(data)
	return hex.EncodeToString(hash[:])
}
