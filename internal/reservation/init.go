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

package reservation

import (
	"net/http"

	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/middleware"
)

// NewHistoryCache returns the shared customer history cache.
func NewHistoryCache(cacheProvider *cache.Provider) cache.CacheInterface[[]Reservation] {
	return cache.GetCache[[]Reservation](cacheProvider, cache.CustomerHistoryCacheName)
}

// Initialize registers the reservation routes and returns the reservation
// service.
func Initialize(mux *http.ServeMux, customers CustomerDirectory, vehicles VehicleDirectory,
	services availability.ServiceSource, invalidator *availability.Invalidator,
	historyCache cache.CacheInterface[[]Reservation]) ReservationServiceInterface {
	service := NewReservationService(customers, vehicles, services, invalidator, historyCache)
	handler := NewReservationHandler(service)

	opts := middleware.CORSOptions{
		AllowedMethods: "GET, POST, PUT, DELETE",
		AllowedHeaders: "Content-Type",
	}
	mux.HandleFunc(middleware.WithCORS("POST /reservations",
		handler.HandleReservationPostRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /reservations/{id}",
		handler.HandleReservationGetRequest, opts))
	mux.HandleFunc(middleware.WithCORS("PUT /reservations/{id}",
		handler.HandleReservationPutRequest, opts))
	mux.HandleFunc(middleware.WithCORS("DELETE /reservations/{id}",
		handler.HandleReservationDeleteRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /customers/{id}/reservations",
		handler.HandleCustomerReservationsRequest, opts))

	return service
}
