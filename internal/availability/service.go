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

// Package availability resolves which vehicles are free to rent for a given
// location and date range by subtracting conflicting reservations and
// scheduled maintenance from the candidate fleet.
package availability

import (
	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

const loggerComponentName = "AvailabilityService"

// AvailabilityServiceInterface defines the availability resolution contract.
type AvailabilityServiceInterface interface {
	CheckAvailability(query *AvailabilityQuery) (*AvailabilityResult, *serviceerror.ServiceError)
}

// availabilityService resolves availability directly against the data sources.
type availabilityService struct {
	locationSource    LocationSource
	vehicleSource     VehicleSource
	reservationSource ReservationSource
	serviceSource     ServiceSource
	maxRangeDays      int
}

// NewAvailabilityService creates an uncached availability resolver.
func NewAvailabilityService(locations LocationSource, vehicles VehicleSource,
	reservations ReservationSource, services ServiceSource) AvailabilityServiceInterface {
	maxRangeDays := config.GetCaravelRuntime().Config.Booking.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}
	return &availabilityService{
		locationSource:    locations,
		vehicleSource:     vehicles,
		reservationSource: reservations,
		serviceSource:     services,
		maxRangeDays:      maxRangeDays,
	}
}

// CheckAvailability validates the query and resolves the available vehicles
// for the half-open interval [StartDate, EndDate).
func (as *availabilityService) CheckAvailability(query *AvailabilityQuery) (
	*AvailabilityResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateQuery(query, as.maxRangeDays); svcErr != nil {
		return nil, svcErr
	}

	exists, err := as.locationSource.LocationExists(query.LocationID)
	if err != nil {
		logger.Error("Failed to look up location", log.Error(err),
			log.String(log.LoggerKeyLocationID, query.LocationID))
		return nil, &ErrorInternalServerError
	}
	if !exists {
		return nil, &ErrorLocationNotFound
	}

	candidates, err := as.vehicleSource.FetchVehicles(query.LocationID, query.VehicleType,
		query.MinDailyRate, query.MaxDailyRate)
	if err != nil {
		logger.Error("Failed to fetch candidate vehicles", log.Error(err),
			log.String(log.LoggerKeyLocationID, query.LocationID))
		return nil, &ErrorInternalServerError
	}

	result := &AvailabilityResult{
		AvailableVehicles:       []Vehicle{},
		ConflictingReservations: []ReservationInterval{},
		BlockingServices:        []ServiceWindow{},
	}
	if len(candidates) == 0 {
		return result, nil
	}

	vehicleIDs := make([]string, 0, len(candidates))
	for _, vehicle := range candidates {
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	reservations, err := as.reservationSource.FetchActiveReservations(vehicleIDs)
	if err != nil {
		logger.Error("Failed to fetch reservations", log.Error(err),
			log.String(log.LoggerKeyLocationID, query.LocationID))
		return nil, &ErrorInternalServerError
	}
	services, err := as.serviceSource.FetchScheduledServices(vehicleIDs, query.StartDate, query.EndDate)
	if err != nil {
		logger.Error("Failed to fetch service windows", log.Error(err),
			log.String(log.LoggerKeyLocationID, query.LocationID))
		return nil, &ErrorInternalServerError
	}

	blocked := make(map[string]bool)
	for _, reservation := range reservations {
		if !blocksInterval(reservation.Status) {
			continue
		}
		if Overlaps(query.StartDate, query.EndDate, reservation.StartDate, reservation.EndDate) {
			blocked[reservation.VehicleID] = true
			result.ConflictingReservations = append(result.ConflictingReservations, reservation)
		}
	}
	for _, window := range services {
		if window.Status != serviceStatusScheduled {
			continue
		}
		// A service window occupies the single day it is scheduled on.
		day := utils.TruncateToDay(window.ScheduledDate)
		if Overlaps(query.StartDate, query.EndDate, day, day.AddDate(0, 0, 1)) {
			blocked[window.VehicleID] = true
			result.BlockingServices = append(result.BlockingServices, window)
		}
	}

	for _, vehicle := range candidates {
		if vehicle.Available && !blocked[vehicle.ID] {
			result.AvailableVehicles = append(result.AvailableVehicles, vehicle)
		}
	}
	result.TotalCount = len(result.AvailableVehicles)

	if logger.IsDebugEnabled() {
		logger.Debug("Resolved availability", log.String(log.LoggerKeyLocationID, query.LocationID),
			log.Int("candidates", len(candidates)), log.Int("available", result.TotalCount))
	}
	return result, nil
}

// validateQuery checks every validation rule and reports all violations
// together rather than stopping at the first failure.
func validateQuery(query *AvailabilityQuery, maxRangeDays int) *serviceerror.ServiceError {
	violations := []string{}

	if query.LocationID == "" {
		violations = append(violations, validationMsgLocationRequired)
	}
	start := utils.TruncateToDay(query.StartDate)
	end := utils.TruncateToDay(query.EndDate)
	if !end.After(start) {
		violations = append(violations, validationMsgEndAfterStart)
	}
	if start.Before(utils.Today()) {
		violations = append(violations, validationMsgStartNotPast)
	}
	if end.After(start.AddDate(0, 0, maxRangeDays)) {
		violations = append(violations, validationMsgRangeTooLong)
	}
	if (query.MinDailyRate != nil && *query.MinDailyRate < 0) ||
		(query.MaxDailyRate != nil && *query.MaxDailyRate < 0) {
		violations = append(violations, validationMsgNegativeRate)
	}
	if query.MinDailyRate != nil && query.MaxDailyRate != nil &&
		*query.MinDailyRate > *query.MaxDailyRate {
		violations = append(violations, validationMsgRateBoundsOrder)
	}

	if len(violations) > 0 {
		return serviceerror.DetailedServiceError(ErrorInvalidAvailabilityQuery, violations)
	}
	return nil
}
