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

// Cache keys follow the domain:scope:params convention so pattern based
// invalidation stays predictable. The availability key embeds the query
// parameters so two equivalent logical queries collide on the same key.
const (
	availabilityKeyDomain    = "avail"
	customerHistoryKeyDomain = "customer:history"
)

// AvailabilityKey builds the cache key for an availability query. The parts
// are the ISO start date, ISO end date and any optional filter segments.
func AvailabilityKey(locationID string, parts ...string) CacheKey {
	return NewCacheKey(availabilityKeyDomain, append([]string{locationID}, parts...)...)
}

// AvailabilityKeyPattern returns the wildcard pattern matching every
// availability entry for the given location.
func AvailabilityKeyPattern(locationID string) string {
	return availabilityKeyDomain + keySeparator + locationID + keySeparator + "*"
}

// CustomerHistoryKey builds the cache key for a customer's reservation history.
func CustomerHistoryKey(customerID string) CacheKey {
	return NewCacheKey(customerHistoryKeyDomain, customerID)
}
