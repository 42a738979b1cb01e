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
	"strconv"
	"time"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// AvailabilityQuery captures the parameters of a single availability lookup.
// StartDate and EndDate are compared at day granularity over the half-open
// interval [StartDate, EndDate).
type AvailabilityQuery struct {
	LocationID   string     `json:"location_id"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	VehicleType  string     `json:"vehicle_type,omitempty"`
	MinDailyRate *float64   `json:"min_daily_rate,omitempty"`
	MaxDailyRate *float64   `json:"max_daily_rate,omitempty"`
}

// Vehicle is the candidate view of a rental vehicle as seen by the resolver.
type Vehicle struct {
	ID             string  `json:"id"`
	HomeLocationID string  `json:"home_location_id"`
	Type           string  `json:"type"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	DailyRate      float64 `json:"daily_rate"`
	Available      bool    `json:"available"`
}

// ReservationInterval is the slice of a reservation the resolver needs for
// conflict detection.
type ReservationInterval struct {
	ReservationID string    `json:"reservation_id"`
	VehicleID     string    `json:"vehicle_id"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	Status        string    `json:"status"`
}

// ServiceWindow is a scheduled maintenance slot that takes a vehicle out of
// the fleet for the day it is booked on.
type ServiceWindow struct {
	ServiceID     string    `json:"service_id"`
	VehicleID     string    `json:"vehicle_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
	Status        string    `json:"status"`
}

// AvailabilityResult is the resolved answer for an availability query.
type AvailabilityResult struct {
	AvailableVehicles       []Vehicle             `json:"available_vehicles"`
	ConflictingReservations []ReservationInterval `json:"conflicting_reservations"`
	BlockingServices        []ServiceWindow       `json:"blocking_services"`
	TotalCount              int                   `json:"total_count"`
}

// Reservation statuses that never block a vehicle.
const (
	reservationStatusCancelled = "CANCELLED"
	reservationStatusCompleted = "COMPLETED"
)

// Service window statuses.
const (
	serviceStatusScheduled = "SCHEDULED"
)

// Overlaps reports whether the two half-open day intervals [aStart, aEnd) and
// [bStart, bEnd) intersect. Back-to-back intervals sharing a boundary day do
// not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart = utils.TruncateToDay(aStart)
	aEnd = utils.TruncateToDay(aEnd)
	bStart = utils.TruncateToDay(bStart)
	bEnd = utils.TruncateToDay(bEnd)
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// blocksInterval reports whether a reservation in the given status can
// conflict with a new booking.
func blocksInterval(status string) bool {
	return status != reservationStatusCancelled && status != reservationStatusCompleted
}

// CacheKey derives the deterministic cache key for the query. Optional filter
// segments are appended only when set so unfiltered queries keep short keys.
func (q *AvailabilityQuery) CacheKey() cache.CacheKey {
	parts := []string{
		utils.FormatDate(q.StartDate),
		utils.FormatDate(q.EndDate),
	}
	if q.VehicleType != "" {
		parts = append(parts, q.VehicleType)
	}
	if q.MinDailyRate != nil {
		parts = append(parts, "min"+strconv.FormatFloat(*q.MinDailyRate, 'f', -1, 64))
	}
	if q.MaxDailyRate != nil {
		parts = append(parts, "max"+strconv.FormatFloat(*q.MaxDailyRate, 'f', -1, 64))
	}
	return cache.AvailabilityKey(q.LocationID, parts...)
}
