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

// Package reservation manages the booking lifecycle. Every mutation re-checks
// conflicts against fresh rows, never against cached availability, and evicts
// the stale cache entries before the mutation is acknowledged.
package reservation

import (
	"errors"
	"time"

	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
	"github.com/caravel-rentals/caravel/internal/vehicle"
)

// CustomerDirectory answers whether a customer exists.
type CustomerDirectory interface {
	CustomerExists(customerID string) (bool, error)
}

// VehicleDirectory resolves vehicles for booking.
type VehicleDirectory interface {
	GetVehicle(vehicleID string) (*vehicle.Vehicle, *serviceerror.ServiceError)
}

// ReservationServiceInterface defines the booking lifecycle contract.
type ReservationServiceInterface interface {
	CreateReservation(request *ReservationRequest) (*Reservation, *serviceerror.ServiceError)
	GetReservation(reservationID string) (*Reservation, *serviceerror.ServiceError)
	ModifyReservation(reservationID string, request *ReservationUpdateRequest) (
		*Reservation, *serviceerror.ServiceError)
	CancelReservation(reservationID string) (*Reservation, *serviceerror.ServiceError)
	GetCustomerReservations(customerID string) ([]Reservation, *serviceerror.ServiceError)

	// FetchActiveReservations supplies availability resolution with blocking
	// reservations.
	FetchActiveReservations(vehicleIDs []string) ([]availability.ReservationInterval, error)
}

// errHistoryCustomerNotFound signals a missing customer through the cache
// factory.
var errHistoryCustomerNotFound = errors.New("customer not found")

// reservationService is the store backed booking service.
type reservationService struct {
	store        reservationStoreInterface
	customers    CustomerDirectory
	vehicles     VehicleDirectory
	services     availability.ServiceSource
	invalidator  *availability.Invalidator
	historyCache cache.CacheInterface[[]Reservation]
	maxRangeDays int
}

// NewReservationService creates a reservation service over the given
// collaborators.
func NewReservationService(customers CustomerDirectory, vehicles VehicleDirectory,
	services availability.ServiceSource, invalidator *availability.Invalidator,
	historyCache cache.CacheInterface[[]Reservation]) ReservationServiceInterface {
	maxRangeDays := config.GetCaravelRuntime().Config.Booking.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}
	return &reservationService{
		store:        newReservationStore(),
		customers:    customers,
		vehicles:     vehicles,
		services:     services,
		invalidator:  invalidator,
		historyCache: historyCache,
		maxRangeDays: maxRangeDays,
	}
}

// CreateReservation validates the request, re-checks conflicts against fresh
// rows and persists the booking.
func (rs *reservationService) CreateReservation(request *ReservationRequest) (
	*Reservation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	startDate, endDate, svcErr := rs.validateBookingRequest(request)
	if svcErr != nil {
		return nil, svcErr
	}

	exists, err := rs.customers.CustomerExists(request.CustomerID)
	if err != nil {
		logger.Error("Failed to look up customer", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if !exists {
		return nil, &ErrorCustomerNotFound
	}

	bookedVehicle, vehErr := rs.vehicles.GetVehicle(request.VehicleID)
	if vehErr != nil {
		if vehErr.Type == serviceerror.ClientErrorType {
			return nil, &ErrorVehicleNotFound
		}
		return nil, &ErrorInternalServerError
	}
	if !bookedVehicle.Available {
		return nil, &ErrorVehicleUnavailable
	}

	if svcErr := rs.checkConflicts(request.VehicleID, startDate, endDate, ""); svcErr != nil {
		return nil, svcErr
	}

	reservation := Reservation{
		ID:         utils.GenerateUUID(),
		VehicleID:  bookedVehicle.ID,
		CustomerID: request.CustomerID,
		LocationID: bookedVehicle.HomeLocationID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     StatusReserved,
		DailyRate:  bookedVehicle.DailyRate,
		TotalCost:  bookedVehicle.DailyRate * float64(rentalDays(startDate, endDate)),
	}
	if err := rs.store.CreateReservation(reservation); err != nil {
		logger.Error("Failed to create reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	rs.invalidator.OnReservationMutated(reservation.LocationID, reservation.CustomerID, "", "")
	logger.Info("Created reservation",
		log.String(log.LoggerKeyReservationID, reservation.ID),
		log.String(log.LoggerKeyLocationID, reservation.LocationID))
	return &reservation, nil
}

// GetReservation retrieves a reservation by id.
func (rs *reservationService) GetReservation(reservationID string) (
	*Reservation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	reservation, err := rs.store.GetReservationByID(reservationID)
	if err != nil {
		logger.Error("Failed to get reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if reservation == nil {
		return nil, &ErrorReservationNotFound
	}
	return reservation, nil
}

// ModifyReservation moves an existing booking to new dates or a new vehicle
// after re-checking conflicts against fresh rows, excluding the reservation
// itself.
func (rs *reservationService) ModifyReservation(reservationID string,
	request *ReservationUpdateRequest) (*Reservation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	current, err := rs.store.GetReservationByID(reservationID)
	if err != nil {
		logger.Error("Failed to get reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if current == nil {
		return nil, &ErrorReservationNotFound
	}
	if current.Status == StatusCompleted || current.Status == StatusCancelled {
		return nil, &ErrorReservationClosed
	}

	updated := *current
	if request.StartDate != "" {
		startDate, parseErr := utils.ParseDate(request.StartDate)
		if parseErr != nil {
			return nil, serviceerror.CustomServiceError(ErrorInvalidBookingRequest,
				"start_date must be a valid ISO date (YYYY-MM-DD)")
		}
		updated.StartDate = startDate
	}
	if request.EndDate != "" {
		endDate, parseErr := utils.ParseDate(request.EndDate)
		if parseErr != nil {
			return nil, serviceerror.CustomServiceError(ErrorInvalidBookingRequest,
				"end_date must be a valid ISO date (YYYY-MM-DD)")
		}
		updated.EndDate = endDate
	}
	if svcErr := rs.validateInterval(updated.StartDate, updated.EndDate); svcErr != nil {
		return nil, svcErr
	}

	previousLocationID := current.LocationID
	if request.VehicleID != "" && request.VehicleID != current.VehicleID {
		bookedVehicle, vehErr := rs.vehicles.GetVehicle(request.VehicleID)
		if vehErr != nil {
			if vehErr.Type == serviceerror.ClientErrorType {
				return nil, &ErrorVehicleNotFound
			}
			return nil, &ErrorInternalServerError
		}
		if !bookedVehicle.Available {
			return nil, &ErrorVehicleUnavailable
		}
		updated.VehicleID = bookedVehicle.ID
		updated.LocationID = bookedVehicle.HomeLocationID
		updated.DailyRate = bookedVehicle.DailyRate
	}

	if svcErr := rs.checkConflicts(updated.VehicleID, updated.StartDate, updated.EndDate,
		reservationID); svcErr != nil {
		return nil, svcErr
	}

	updated.Status = StatusModified
	updated.TotalCost = updated.DailyRate * float64(rentalDays(updated.StartDate, updated.EndDate))
	if err := rs.store.UpdateReservation(updated); err != nil {
		logger.Error("Failed to update reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	rs.invalidator.OnReservationMutated(updated.LocationID, updated.CustomerID,
		previousLocationID, "")
	logger.Info("Modified reservation", log.String(log.LoggerKeyReservationID, reservationID))
	return &updated, nil
}

// CancelReservation cancels a booking. Cancelling an already cancelled
// reservation is a no-op; cancelling a completed one is a conflict.
func (rs *reservationService) CancelReservation(reservationID string) (
	*Reservation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	current, err := rs.store.GetReservationByID(reservationID)
	if err != nil {
		logger.Error("Failed to get reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if current == nil {
		return nil, &ErrorReservationNotFound
	}
	if current.Status == StatusCompleted {
		return nil, &ErrorReservationClosed
	}
	if current.Status == StatusCancelled {
		return current, nil
	}

	if err := rs.store.UpdateReservationStatus(reservationID, StatusCancelled); err != nil {
		logger.Error("Failed to cancel reservation", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	current.Status = StatusCancelled

	rs.invalidator.OnReservationMutated(current.LocationID, current.CustomerID, "", "")
	logger.Info("Cancelled reservation", log.String(log.LoggerKeyReservationID, reservationID))
	return current, nil
}

// GetCustomerReservations retrieves a customer's booking history with a
// cache-aside read path.
func (rs *reservationService) GetCustomerReservations(customerID string) (
	[]Reservation, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if customerID == "" {
		return nil, &ErrorCustomerNotFound
	}

	history, err := rs.historyCache.GetOrSet(cache.CustomerHistoryKey(customerID),
		func() ([]Reservation, error) {
			exists, lookupErr := rs.customers.CustomerExists(customerID)
			if lookupErr != nil {
				return nil, lookupErr
			}
			if !exists {
				return nil, errHistoryCustomerNotFound
			}
			return rs.store.GetReservationsByCustomer(customerID)
		})
	if err != nil {
		if errors.Is(err, errHistoryCustomerNotFound) {
			return nil, &ErrorCustomerNotFound
		}
		logger.Error("Failed to get customer reservations", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return history, nil
}

// FetchActiveReservations adapts stored reservations to the availability view.
func (rs *reservationService) FetchActiveReservations(vehicleIDs []string) (
	[]availability.ReservationInterval, error) {
	reservations, err := rs.store.GetActiveReservations(vehicleIDs)
	if err != nil {
		return nil, err
	}

	intervals := make([]availability.ReservationInterval, 0, len(reservations))
	for _, reservation := range reservations {
		intervals = append(intervals, availability.ReservationInterval{
			ReservationID: reservation.ID,
			VehicleID:     reservation.VehicleID,
			StartDate:     reservation.StartDate,
			EndDate:       reservation.EndDate,
			Status:        string(reservation.Status),
		})
	}
	return intervals, nil
}

// checkConflicts verifies that the vehicle is free over [startDate, endDate),
// ignoring the reservation being modified.
func (rs *reservationService) checkConflicts(vehicleID string, startDate, endDate time.Time,
	excludeReservationID string) *serviceerror.ServiceError {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	reservations, err := rs.store.GetActiveReservationsByVehicle(vehicleID)
	if err != nil {
		logger.Error("Failed to fetch reservations for conflict check", log.Error(err))
		return &ErrorInternalServerError
	}
	for _, other := range reservations {
		if other.ID == excludeReservationID || !blocksVehicle(other.Status) {
			continue
		}
		if availability.Overlaps(startDate, endDate, other.StartDate, other.EndDate) {
			return serviceerror.CustomServiceError(ErrorReservationConflict,
				"The vehicle is already reserved over the requested dates")
		}
	}

	windows, err := rs.services.FetchScheduledServices([]string{vehicleID}, startDate, endDate)
	if err != nil {
		logger.Error("Failed to fetch service windows for conflict check", log.Error(err))
		return &ErrorInternalServerError
	}
	for _, window := range windows {
		day := utils.TruncateToDay(window.ScheduledDate)
		if availability.Overlaps(startDate, endDate, day, day.AddDate(0, 0, 1)) {
			return serviceerror.CustomServiceError(ErrorReservationConflict,
				"The vehicle is scheduled for service over the requested dates")
		}
	}
	return nil
}

// validateBookingRequest checks the create payload and reports all violations
// together.
func (rs *reservationService) validateBookingRequest(request *ReservationRequest) (
	time.Time, time.Time, *serviceerror.ServiceError) {
	violations := []string{}

	if request.CustomerID == "" {
		violations = append(violations, "customer_id is required")
	}
	if request.VehicleID == "" {
		violations = append(violations, "vehicle_id is required")
	}
	startDate, startErr := utils.ParseDate(request.StartDate)
	if startErr != nil {
		violations = append(violations, "start_date must be a valid ISO date (YYYY-MM-DD)")
	}
	endDate, endErr := utils.ParseDate(request.EndDate)
	if endErr != nil {
		violations = append(violations, "end_date must be a valid ISO date (YYYY-MM-DD)")
	}
	if startErr == nil && endErr == nil {
		if svcErr := rs.validateInterval(startDate, endDate); svcErr != nil {
			violations = append(violations, svcErr.Details...)
		}
	}

	if len(violations) > 0 {
		return time.Time{}, time.Time{},
			serviceerror.DetailedServiceError(ErrorInvalidBookingRequest, violations)
	}
	return startDate, endDate, nil
}

// validateInterval checks the booking date rules.
func (rs *reservationService) validateInterval(startDate,
	endDate time.Time) *serviceerror.ServiceError {
	violations := []string{}

	start := utils.TruncateToDay(startDate)
	end := utils.TruncateToDay(endDate)
	if !end.After(start) {
		violations = append(violations, "end_date must be after start_date")
	}
	if start.Before(utils.Today()) {
		violations = append(violations, "start_date must not be in the past")
	}
	if end.After(start.AddDate(0, 0, rs.maxRangeDays)) {
		violations = append(violations, "date range exceeds the maximum booking window")
	}

	if len(violations) > 0 {
		return serviceerror.DetailedServiceError(ErrorInvalidBookingRequest, violations)
	}
	return nil
}
