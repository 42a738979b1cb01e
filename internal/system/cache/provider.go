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
	"reflect"
	"sync"
	"time"

	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// cacheHandle is the type-erased view of a named cache held by the provider.
type cacheHandle interface {
	GetName() string
	CleanupExpired()
	GetStats() CacheStat
}

// Provider owns every named cache in the process together with the shared
// expiry sweeper. It is constructed once at startup and injected into the
// stores that need caching; tests construct isolated instances. The caches
// are per process: multiple service instances behind a load balancer each
// hold an independent cache, bounded only by TTL and local invalidation.
type Provider struct {
	cacheConfig config.CacheConfig
	backing     BackingStore
	caches      map[string]interface{}
	mu          sync.RWMutex
	stop        chan struct{}
	stopOnce    sync.Once
}

// NewProvider creates a cache provider from the given configuration and
// starts the periodic expiry sweep. A nil backing disables durable writes.
func NewProvider(cacheConfig config.CacheConfig, backing BackingStore) *Provider {
	p := &Provider{
		cacheConfig: cacheConfig,
		backing:     backing,
		caches:      make(map[string]interface{}),
		stop:        make(chan struct{}),
	}

	if !cacheConfig.Disabled {
		go p.runCleanup()
	}

	return p
}

// GetCache returns the named cache for the given value type, creating it on
// first use. The registry is keyed by name alone: reusing a name with a
// different value type returns a disabled cache rather than silently creating
// a second cache under the same name.
func GetCache[T any](p *Provider, cacheName string) CacheInterface[T] {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheProvider"))

	var t T
	typeName := reflect.TypeOf(&t).Elem().String()

	p.mu.RLock()
	if existing, ok := p.caches[cacheName]; ok {
		p.mu.RUnlock()
		if typed, ok := existing.(CacheInterface[T]); ok {
			return typed
		}
		logger.Warn("Type mismatch for cache", log.String(log.LoggerKeyCacheName, cacheName),
			log.String("requestedType", typeName))
		return &Cache[T]{enabled: false, cacheName: cacheName}
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.caches[cacheName]; ok {
		if typed, ok := existing.(CacheInterface[T]); ok {
			return typed
		}
		logger.Warn("Type mismatch for cache", log.String(log.LoggerKeyCacheName, cacheName),
			log.String("requestedType", typeName))
		return &Cache[T]{enabled: false, cacheName: cacheName}
	}

	logger.Debug("Creating cache", log.String(log.LoggerKeyCacheName, cacheName),
		log.String("type", typeName))
	created := newCache[T](p.cacheConfig, cacheName, p.backing)
	p.caches[cacheName] = created

	return created
}

// Stats returns the statistics of every cache created through the provider,
// keyed by cache name.
func (p *Provider) Stats() map[string]CacheStat {
	p.mu.RLock()
	defer p.mu.RUnlock()

	stats := make(map[string]CacheStat, len(p.caches))
	for _, c := range p.caches {
		if handle, ok := c.(cacheHandle); ok {
			stats[handle.GetName()] = handle.GetStats()
		}
	}
	return stats
}

// Close stops the periodic expiry sweep. Safe to call more than once.
func (p *Provider) Close() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

// runCleanup sweeps expired entries from every cache at the configured
// interval until the provider is closed.
func (p *Provider) runCleanup() {
	interval := p.cacheConfig.CleanupInterval
	if interval <= 0 {
		interval = defaultCleanupInterval
	}

	ticker := time.NewTicker(time.Duration(interval) * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			p.cleanupAll()
		case <-p.stop:
			return
		}
	}
}

// cleanupAll runs the expiry sweep over every cache created so far.
func (p *Provider) cleanupAll() {
	p.mu.RLock()
	handles := make([]cacheHandle, 0, len(p.caches))
	for _, c := range p.caches {
		if handle, ok := c.(cacheHandle); ok {
			handles = append(handles, handle)
		}
	}
	p.mu.RUnlock()

	// The sweep takes each cache's own lock; the provider lock is not held
	// so foreground operations on other caches are never blocked.
	for _, handle := range handles {
		handle.CleanupExpired()
	}
}
