/*
 * Copyright (c) 2025, Caravel Rentals.
 *
 * Caravel Rentals licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/caravel-rentals/caravel/internal/system/log"
)

// inMemoryCacheEntry represents an entry in the in-memory cache. Recency
// lives in the access-order list, not in the entry itself.
type inMemoryCacheEntry[T any] struct {
	*CacheEntry[T]
	listElement *list.Element
}

// inMemoryCache is a capacity-bounded, TTL-bounded store with strict LRU
// eviction. The entry map and the access-order list are updated together
// under one mutex; a key is present in both or in neither.
type inMemoryCache[T any] struct {
	enabled     bool
	name        string
	cache       map[CacheKey]*inMemoryCacheEntry[T]
	accessOrder *list.List
	mu          sync.RWMutex
	size        int
	ttl         time.Duration
	onRemove    func(key CacheKey)
	hitCount    int64
	missCount   int64
	evictCount  int64
}

// newInMemoryCache creates a new instance of inMemoryCache. The onRemove hook,
// when non-nil, is invoked synchronously inside the critical section for every
// entry removal: expiry, explicit invalidation and capacity eviction.
func newInMemoryCache[T any](name string, enabled bool, size int, ttl time.Duration,
	onRemove func(key CacheKey)) *inMemoryCache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, name))

	if !enabled {
		logger.Warn("In-memory cache is disabled, returning empty cache")
		return &inMemoryCache[T]{
			name:    name,
			enabled: false,
		}
	}

	cacheSize := size
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}

	cacheTTL := ttl
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL * time.Second
	}

	logger.Debug("Initializing in-memory cache", log.Int("size", cacheSize), log.Any("ttl", cacheTTL))

	return &inMemoryCache[T]{
		enabled:     true,
		name:        name,
		cache:       make(map[CacheKey]*inMemoryCacheEntry[T]),
		accessOrder: list.New(),
		size:        cacheSize,
		ttl:         cacheTTL,
		onRemove:    onRemove,
	}
}

// Set adds or updates an entry in the cache. If the store is at capacity the
// least recently accessed entry is evicted first.
func (c *inMemoryCache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}
	if key.Key == "" {
		return ErrEmptyCacheKey
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	expiryTime := now.Add(c.ttl)

	// Replace the value and reset access order when the key already exists.
	if existingEntry, exists := c.cache[key]; exists {
		existingEntry.Value = value
		existingEntry.CreatedAt = now
		existingEntry.ExpiryTime = expiryTime
		c.accessOrder.MoveToFront(existingEntry.listElement)
		return nil
	}

	if len(c.cache) >= c.size {
		logger.Debug("Cache at capacity, evicting the least recently used entry")
		c.evictOldest()
	}

	listElement := c.accessOrder.PushFront(key)
	c.cache[key] = &inMemoryCacheEntry[T]{
		CacheEntry: &CacheEntry[T]{
			Value:      value,
			CreatedAt:  now,
			ExpiryTime: expiryTime,
		},
		listElement: listElement,
	}

	logger.Debug("Cache entry set", log.String("key", key.ToString()))
	return nil
}

// Get retrieves a value from the cache. An expired entry is removed lazily
// and counts as a miss.
func (c *inMemoryCache[T]) Get(key CacheKey) (T, bool) {
	if !c.enabled {
		var zero T
		return zero, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache[key]
	if !exists {
		c.missCount++
		var zero T
		return zero, false
	}

	if !time.Now().Before(entry.ExpiryTime) {
		c.deleteEntry(key, entry)
		c.missCount++
		var zero T
		return zero, false
	}

	entry.HitCount++
	c.accessOrder.MoveToFront(entry.listElement)
	c.hitCount++

	return entry.Value, true
}

// Invalidate removes an entry from the cache and reports whether it existed.
func (c *inMemoryCache[T]) Invalidate(key CacheKey) bool {
	if !c.enabled {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.cache[key]
	if !exists {
		return false
	}
	c.deleteEntry(key, entry)
	return true
}

// InvalidatePattern removes all entries whose key matches the wildcard
// pattern and returns the number removed.
func (c *inMemoryCache[T]) InvalidatePattern(pattern string) int {
	if !c.enabled {
		return 0
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.cache {
		if MatchPattern(key.Key, pattern) {
			c.deleteEntry(key, entry)
			removed++
		}
	}

	if removed > 0 {
		logger.Debug("Cache entries invalidated by pattern", log.String("pattern", pattern),
			log.Int("count", removed))
	}
	return removed
}

// Clear removes all entries from the cache.
func (c *inMemoryCache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.onRemove != nil {
		for key := range c.cache {
			c.onRemove(key)
		}
	}

	c.cache = make(map[CacheKey]*inMemoryCacheEntry[T])
	c.accessOrder.Init()
	c.hitCount = 0
	c.missCount = 0
	c.evictCount = 0

	logger.Debug("Cleared all entries in the cache")
	return nil
}

// IsEnabled returns whether the cache is enabled.
func (c *inMemoryCache[T]) IsEnabled() bool {
	return c.enabled
}

// GetName returns the name of the cache.
func (c *inMemoryCache[T]) GetName() string {
	return c.name
}

// GetStats returns cache statistics. The hit rate is a percentage.
func (c *inMemoryCache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Enabled: false}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	totalOps := c.hitCount + c.missCount
	var hitRate float64
	if totalOps > 0 {
		hitRate = float64(c.hitCount) / float64(totalOps) * 100
	}

	return CacheStat{
		Enabled:    true,
		Size:       len(c.cache),
		MaxSize:    c.size,
		HitCount:   c.hitCount,
		MissCount:  c.missCount,
		HitRate:    hitRate,
		EvictCount: c.evictCount,
	}
}

// CleanupExpired removes all expired entries from the cache.
func (c *inMemoryCache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, c.name))

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	cleaned := 0
	for key, entry := range c.cache {
		if !now.Before(entry.ExpiryTime) {
			c.deleteEntry(key, entry)
			cleaned++
		}
	}

	if cleaned > 0 {
		logger.Debug("Expired cache entries cleaned", log.Int("count", cleaned))
	}
}

// evictOldest removes the least recently used entry from the cache.
func (c *inMemoryCache[T]) evictOldest() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "InMemoryCache"),
		log.String(log.LoggerKeyCacheName, c.name))

	oldest := c.accessOrder.Back()
	if oldest == nil {
		return
	}

	key := oldest.Value.(CacheKey)
	if entry, exists := c.cache[key]; exists {
		c.deleteEntry(key, entry)
		c.evictCount++
		logger.Debug("Cache entry evicted", log.String("key", key.ToString()))
	}
}

// deleteEntry removes an entry from both the map and the access order list,
// then runs the removal hook. Callers must hold the write lock.
func (c *inMemoryCache[T]) deleteEntry(key CacheKey, entry *inMemoryCacheEntry[T]) {
	delete(c.cache, key)
	c.accessOrder.Remove(entry.listElement)

	if c.onRemove != nil {
		c.onRemove(key)
	}
}
