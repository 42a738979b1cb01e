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
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/middleware"
)

// Initialize wires the availability resolver behind the cache and registers
// the availability routes. It returns the cached service for use by other
// components.
func Initialize(mux *http.ServeMux, cacheProvider *cache.Provider, locations LocationSource,
	vehicles VehicleSource, reservations ReservationSource,
	services ServiceSource) AvailabilityServiceInterface {
	availabilityCache := cache.GetCache[*AvailabilityResult](cacheProvider, cache.AvailabilityCacheName)
	service := NewCachedAvailabilityService(
		NewAvailabilityService(locations, vehicles, reservations, services), availabilityCache)
	handler := NewAvailabilityHandler(service)

	opts := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type"}
	mux.HandleFunc(middleware.WithCORS("GET /availability", handler.HandleCheckAvailability, opts))

	return service
}

// NewAvailabilityCacheInvalidator builds the invalidation router over the
// shared cache provider.
func NewAvailabilityCacheInvalidator(cacheProvider *cache.Provider,
	historyCache KeyInvalidator) *Invalidator {
	availabilityCache := cache.GetCache[*AvailabilityResult](cacheProvider, cache.AvailabilityCacheName)
	return NewInvalidator(availabilityCache, historyCache)
}
