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

// Names of the caches managed by the provider. TTLs are tuned per data
// volatility in deployment.yaml: availability results expire in minutes,
// locations in tens of minutes, customer history in between.
const (
	// AvailabilityCacheName is the cache holding availability query results.
	AvailabilityCacheName = "AvailabilityCache"
	// LocationCacheName is the cache holding location reference data.
	LocationCacheName = "LocationCache"
	// CustomerHistoryCacheName is the cache holding customer reservation history.
	CustomerHistoryCacheName = "CustomerHistoryCache"
)

const (
	// keySeparator separates the segments of a cache key.
	keySeparator = ":"
	// defaultCleanupInterval is the default interval in seconds for the expiry sweep.
	defaultCleanupInterval = 60
	// defaultCacheTTL is the default TTL for cache entries in seconds.
	defaultCacheTTL = 300
	// defaultCacheSize is the default capacity for the caches.
	defaultCacheSize = 1000
)
