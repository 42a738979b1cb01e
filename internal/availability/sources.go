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

import "time"

// LocationSource answers whether a rental location exists.
type LocationSource interface {
	LocationExists(locationID string) (bool, error)
}

// VehicleSource supplies the candidate vehicles for a location, optionally
// narrowed by type and daily rate bounds.
type VehicleSource interface {
	FetchVehicles(locationID, vehicleType string, minRate, maxRate *float64) ([]Vehicle, error)
}

// ReservationSource supplies the reservations that can still block the given
// vehicles.
type ReservationSource interface {
	FetchActiveReservations(vehicleIDs []string) ([]ReservationInterval, error)
}

// ServiceSource supplies scheduled maintenance windows for the given vehicles
// within a date range.
type ServiceSource interface {
	FetchScheduledServices(vehicleIDs []string, startDate, endDate time.Time) ([]ServiceWindow, error)
}
