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

package availability

import (
	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

const invalidatorComponentName = "CacheInvalidator"

// PatternInvalidator is the slice of the cache API the invalidator needs for
// wildcard eviction.
type PatternInvalidator interface {
	InvalidatePattern(pattern string) int
}

// KeyInvalidator is the slice of the cache API the invalidator needs for
// single key eviction.
type KeyInvalidator interface {
	Invalidate(key cache.CacheKey) bool
}

// Invalidator evicts the cache entries made stale by a reservation mutation.
// Eviction runs synchronously so the caches never serve stale availability
// after the mutation has been acknowledged to the caller.
type Invalidator struct {
	availabilityCache PatternInvalidator
	historyCache      KeyInvalidator
}

// NewInvalidator creates an invalidation router over the availability and
// customer history caches.
func NewInvalidator(availabilityCache PatternInvalidator, historyCache KeyInvalidator) *Invalidator {
	return &Invalidator{
		availabilityCache: availabilityCache,
		historyCache:      historyCache,
	}
}

// OnReservationMutated evicts every cached availability result for the
// affected location(s) and the mutating customer's history. Previous ids
// cover moves between locations or customers on modification; pass empty
// strings when they did not change.
func (iv *Invalidator) OnReservationMutated(locationID, customerID,
	previousLocationID, previousCustomerID string) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, invalidatorComponentName))

	evicted := 0
	if locationID != "" {
		evicted += iv.availabilityCache.InvalidatePattern(cache.AvailabilityKeyPattern(locationID))
	}
	if previousLocationID != "" && previousLocationID != locationID {
		evicted += iv.availabilityCache.InvalidatePattern(
			cache.AvailabilityKeyPattern(previousLocationID))
	}
	if customerID != "" {
		iv.historyCache.Invalidate(cache.CustomerHistoryKey(customerID))
	}
	if previousCustomerID != "" && previousCustomerID != customerID {
		iv.historyCache.Invalidate(cache.CustomerHistoryKey(previousCustomerID))
	}

	if logger.IsDebugEnabled() {
		logger.Debug("Invalidated caches for reservation mutation",
			log.String(log.LoggerKeyLocationID, locationID), log.Int("evicted", evicted))
	}
}

// OnFleetMutated evicts the cached availability for a location after a fleet
// change such as a scheduled or cancelled service window.
func (iv *Invalidator) OnFleetMutated(locationID string) {
	if locationID == "" {
		return
	}
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, invalidatorComponentName))

	evicted := iv.availabilityCache.InvalidatePattern(cache.AvailabilityKeyPattern(locationID))
	if logger.IsDebugEnabled() {
		logger.Debug("Invalidated availability for fleet mutation",
			log.String(log.LoggerKeyLocationID, locationID), log.Int("evicted", evicted))
	}
}
