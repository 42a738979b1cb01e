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
	"encoding/json"
	"time"

	"github.com/avast/retry-go/v4"

	dbmodel "github.com/caravel-rentals/caravel/internal/system/database/model"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// BackingStore is the optional durable side channel for cache entries. It is
// write-through and best effort: failures are logged and swallowed, and the
// in-memory view stays authoritative.
type BackingStore interface {
	Save(cacheName, key string, value interface{}, expiryTime time.Time)
	Remove(cacheName, key string)
}

var (
	querySaveCacheEntry = dbmodel.DBQuery{
		ID: "CCQ-CACHE-01",
		Query: "INSERT INTO CACHE_ENTRY (CACHE_NAME, ENTRY_KEY, ENTRY_VALUE, EXPIRY_TIME) " +
			"VALUES ($1, $2, $3, $4) ON CONFLICT (CACHE_NAME, ENTRY_KEY) " +
			"DO UPDATE SET ENTRY_VALUE = $3, EXPIRY_TIME = $4",
	}
	queryRemoveCacheEntry = dbmodel.DBQuery{
		ID:    "CCQ-CACHE-02",
		Query: "DELETE FROM CACHE_ENTRY WHERE CACHE_NAME = $1 AND ENTRY_KEY = $2",
	}
)

// dbBackingStore persists cache entries to the runtime datasource.
type dbBackingStore struct {
	dbProvider provider.DBProviderInterface
}

// NewDBBackingStore creates a durable cache backing over the runtime database.
func NewDBBackingStore(dbProvider provider.DBProviderInterface) BackingStore {
	return &dbBackingStore{
		dbProvider: dbProvider,
	}
}

// Save writes the entry to the runtime database without blocking the caller.
func (b *dbBackingStore) Save(cacheName, key string, value interface{}, expiryTime time.Time) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheBackingStore"),
		log.String(log.LoggerKeyCacheName, cacheName))

	payload, err := json.Marshal(value)
	if err != nil {
		logger.Warn("Failed to serialize cache entry for persistence", log.Error(err))
		return
	}

	go func() {
		err := retry.Do(func() error {
			dbClient, err := b.dbProvider.GetDBClient("runtime")
			if err != nil {
				return err
			}
			_, err = dbClient.Execute(querySaveCacheEntry, cacheName, key, string(payload),
				expiryTime.UTC())
			return err
		}, retry.Attempts(2), retry.Delay(50*time.Millisecond))
		if err != nil {
			logger.Warn("Failed to persist cache entry", log.String("key", key), log.Error(err))
		}
	}()
}

// Remove deletes the entry from the runtime database without blocking the caller.
func (b *dbBackingStore) Remove(cacheName, key string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CacheBackingStore"),
		log.String(log.LoggerKeyCacheName, cacheName))

	go func() {
		err := retry.Do(func() error {
			dbClient, err := b.dbProvider.GetDBClient("runtime")
			if err != nil {
				return err
			}
			_, err = dbClient.Execute(queryRemoveCacheEntry, cacheName, key)
			return err
		}, retry.Attempts(2), retry.Delay(50*time.Millisecond))
		if err != nil {
			logger.Warn("Failed to remove persisted cache entry", log.String("key", key), log.Error(err))
		}
	}()
}
