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

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

// Reservation statuses. Cancelled and completed reservations never block a
// vehicle.
const (
	StatusReserved  ReservationStatus = "RESERVED"
	StatusActive    ReservationStatus = "ACTIVE"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusModified  ReservationStatus = "MODIFIED"
)

// Reservation represents a booking of a vehicle over the half-open day
// interval [StartDate, EndDate).
type Reservation struct {
	ID         string            `json:"id"`
	VehicleID  string            `json:"vehicle_id"`
	CustomerID string            `json:"customer_id"`
	LocationID string            `json:"location_id"`
	StartDate  time.Time         `json:"start_date"`
	EndDate    time.Time         `json:"end_date"`
	Status     ReservationStatus `json:"status"`
	DailyRate  float64           `json:"daily_rate"`
	TotalCost  float64           `json:"total_cost"`
}

// ReservationRequest is the payload for creating a reservation.
type ReservationRequest struct {
	VehicleID  string `json:"vehicle_id"`
	CustomerID string `json:"customer_id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
}

// ReservationUpdateRequest is the payload for modifying a reservation. Empty
// fields keep their current values.
type ReservationUpdateRequest struct {
	VehicleID string `json:"vehicle_id,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// blocksVehicle reports whether a reservation in the given status conflicts
// with other bookings of the same vehicle.
func blocksVehicle(status ReservationStatus) bool {
	return status != StatusCancelled && status != StatusCompleted
}

// rentalDays returns the chargeable number of days in [start, end).
func rentalDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
