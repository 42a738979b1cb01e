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

// Package cache provides the in-memory caching layer: a capacity and TTL
// bounded LRU store, cache-aside fetch semantics and pattern invalidation.
package cache

import (
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// ErrEmptyCacheKey is returned when a value is stored under an empty key.
var ErrEmptyCacheKey = errors.New("cache key must not be empty")

// CacheInterface defines the common interface for cache operations.
type CacheInterface[T any] interface {
	GetName() string
	IsEnabled() bool
	Set(key CacheKey, value T) error
	Get(key CacheKey) (T, bool)
	GetOrSet(key CacheKey, factory func() (T, error)) (T, error)
	Invalidate(key CacheKey) bool
	InvalidatePattern(pattern string) int
	Clear() error
	CleanupExpired()
	GetStats() CacheStat
}

// Cache implements the CacheInterface for individual named caches.
type Cache[T any] struct {
	enabled   bool
	cacheName string
	internal  *inMemoryCache[T]
	backing   BackingStore
	dedup     bool
	group     singleflight.Group
}

// newCache creates a new cache instance from the given configuration.
func newCache[T any](cacheConfig config.CacheConfig, cacheName string, backing BackingStore) *Cache[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String(log.LoggerKeyCacheName, cacheName))

	if cacheConfig.Disabled {
		logger.Debug("Caching is disabled, returning empty cache")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	cacheProperty := getCacheProperty(cacheConfig, cacheName)
	if cacheProperty.Disabled {
		logger.Debug("Individual cache is disabled, returning empty cache")
		return &Cache[T]{
			enabled:   false,
			cacheName: cacheName,
		}
	}

	size := cacheProperty.Size
	if size <= 0 {
		size = defaultCacheSize
	}

	ttl := cacheProperty.TTL
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	// Writes to the durable backing are best effort only; the removal hook
	// keeps it from serving entries the in-memory view no longer holds.
	var onRemove func(key CacheKey)
	if backing != nil {
		onRemove = func(key CacheKey) {
			backing.Remove(cacheName, key.Key)
		}
	}

	return &Cache[T]{
		enabled:   true,
		cacheName: cacheName,
		internal: newInMemoryCache[T](cacheName, true, size,
			time.Duration(ttl)*time.Second, onRemove),
		backing: backing,
		dedup:   cacheProperty.Dedup,
	}
}

// GetName returns the name of the cache.
func (c *Cache[T]) GetName() string {
	return c.cacheName
}

// IsEnabled returns whether the cache is enabled.
func (c *Cache[T]) IsEnabled() bool {
	return c.enabled
}

// Set stores a value in the cache.
func (c *Cache[T]) Set(key CacheKey, value T) error {
	if !c.enabled {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String(log.LoggerKeyCacheName, c.cacheName))

	if err := c.internal.Set(key, value); err != nil {
		logger.Warn("Failed to set value in the cache", log.String("key", key.ToString()), log.Error(err))
		return err
	}

	if c.backing != nil {
		c.backing.Save(c.cacheName, key.Key, value, time.Now().Add(c.internal.ttl))
	}

	return nil
}

// Get retrieves a value from the cache.
func (c *Cache[T]) Get(key CacheKey) (T, bool) {
	if c.enabled {
		if value, found := c.internal.Get(key); found {
			return value, true
		}
	}

	var zero T
	return zero, false
}

// GetOrSet returns the cached value for the key, or invokes the factory on a
// miss, stores its result and returns it. Factory errors are returned as is
// and never cached. When dedup is enabled for the cache, concurrent misses on
// the same key are coalesced into a single factory invocation; otherwise
// concurrent misses may each invoke the factory and the last write wins,
// which is acceptable for idempotent, side-effect-free factories.
func (c *Cache[T]) GetOrSet(key CacheKey, factory func() (T, error)) (T, error) {
	if !c.enabled {
		return factory()
	}

	if value, found := c.internal.Get(key); found {
		return value, nil
	}

	if c.dedup {
		value, err, _ := c.group.Do(key.Key, func() (interface{}, error) {
			if cached, found := c.internal.Get(key); found {
				return cached, nil
			}
			computed, err := factory()
			if err != nil {
				return computed, err
			}
			if setErr := c.Set(key, computed); setErr != nil {
				log.GetLogger().Warn("Failed to store computed value in the cache",
					log.String(log.LoggerKeyCacheName, c.cacheName), log.Error(setErr))
			}
			return computed, nil
		})
		if err != nil {
			var zero T
			return zero, err
		}
		return value.(T), nil
	}

	computed, err := factory()
	if err != nil {
		var zero T
		return zero, err
	}
	if setErr := c.Set(key, computed); setErr != nil {
		log.GetLogger().Warn("Failed to store computed value in the cache",
			log.String(log.LoggerKeyCacheName, c.cacheName), log.Error(setErr))
	}
	return computed, nil
}

// Invalidate removes an entry from the cache and reports whether it existed.
func (c *Cache[T]) Invalidate(key CacheKey) bool {
	if !c.enabled {
		return false
	}
	return c.internal.Invalidate(key)
}

// InvalidatePattern removes all entries matching the wildcard pattern and
// returns the number of entries removed.
func (c *Cache[T]) InvalidatePattern(pattern string) int {
	if !c.enabled {
		return 0
	}
	return c.internal.InvalidatePattern(pattern)
}

// Clear removes all entries in the cache.
func (c *Cache[T]) Clear() error {
	if !c.enabled {
		return nil
	}

	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Cache"),
		log.String(log.LoggerKeyCacheName, c.cacheName))

	if err := c.internal.Clear(); err != nil {
		logger.Warn("Failed to clear the cache", log.Error(err))
	}
	return nil
}

// CleanupExpired cleans up expired entries in the cache.
func (c *Cache[T]) CleanupExpired() {
	if !c.enabled {
		return
	}
	c.internal.CleanupExpired()
}

// GetStats returns cache statistics.
func (c *Cache[T]) GetStats() CacheStat {
	if !c.enabled {
		return CacheStat{Enabled: false}
	}
	return c.internal.GetStats()
}

// getCacheProperty retrieves the cache property for the specified cache name.
func getCacheProperty(cacheConfig config.CacheConfig, cacheName string) config.CacheProperty {
	for _, property := range cacheConfig.Properties {
		if property.Name == cacheName {
			return property
		}
	}
	return config.CacheProperty{}
}
