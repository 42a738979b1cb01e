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

// Package managers wires the domain services together and registers their
// routes.
package managers

import (
	"net/http"

	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/customer"
	"github.com/caravel-rentals/caravel/internal/location"
	"github.com/caravel-rentals/caravel/internal/maintenance"
	"github.com/caravel-rentals/caravel/internal/reservation"
	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/healthcheck"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/vehicle"
)

// RegisterServices initializes every domain service against the shared cache
// provider and registers its routes. Initialization order follows the
// dependency order between the services.
func RegisterServices(mux *http.ServeMux, cacheProvider *cache.Provider) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "ServiceManager"))

	locationService := location.Initialize(mux, cacheProvider)
	vehicleService := vehicle.Initialize(mux)
	customerService := customer.Initialize(mux)

	historyCache := reservation.NewHistoryCache(cacheProvider)
	invalidator := availability.NewAvailabilityCacheInvalidator(cacheProvider, historyCache)

	maintenanceService := maintenance.Initialize(mux, invalidator)
	reservationService := reservation.Initialize(mux, customerService, vehicleService,
		maintenanceService, invalidator, historyCache)
	availability.Initialize(mux, cacheProvider, locationService, vehicleService,
		reservationService, maintenanceService)

	healthcheck.Initialize(mux, cacheProvider)

	logger.Debug("Registered all services")
}
