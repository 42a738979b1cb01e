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

// Package maintenance manages vehicle service windows.
package maintenance

import (
	"time"

	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// MaintenanceServiceInterface defines the service window management contract.
type MaintenanceServiceInterface interface {
	ScheduleService(request *ServiceWindowRequest) (*ServiceWindow, *serviceerror.ServiceError)
	UpdateServiceStatus(serviceID string, status ServiceStatus) (
		*ServiceWindow, *serviceerror.ServiceError)

	// FetchScheduledServices supplies availability resolution with blocking
	// service windows.
	FetchScheduledServices(vehicleIDs []string, startDate, endDate time.Time) (
		[]availability.ServiceWindow, error)
}

// maintenanceService is the store backed service window manager. Mutations
// evict the availability cache for the vehicle's home location before they
// are acknowledged.
type maintenanceService struct {
	store       serviceStoreInterface
	invalidator *availability.Invalidator
}

// NewMaintenanceService creates a maintenance service.
func NewMaintenanceService(invalidator *availability.Invalidator) MaintenanceServiceInterface {
	return &maintenanceService{
		store:       newServiceStore(),
		invalidator: invalidator,
	}
}

// ScheduleService validates and persists a new service window.
func (ms *maintenanceService) ScheduleService(request *ServiceWindowRequest) (
	*ServiceWindow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if request.VehicleID == "" {
		return nil, &ErrorVehicleRequired
	}
	scheduledDate, err := utils.ParseDate(request.ScheduledDate)
	if err != nil {
		return nil, &ErrorInvalidScheduledDate
	}
	if utils.TruncateToDay(scheduledDate).Before(utils.Today()) {
		return nil, &ErrorScheduledDateInPast
	}

	locationID, err := ms.store.GetVehicleLocation(request.VehicleID)
	if err != nil {
		logger.Error("Failed to resolve vehicle location", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if locationID == "" {
		return nil, &ErrorVehicleNotFound
	}

	window := ServiceWindow{
		ID:            utils.GenerateUUID(),
		VehicleID:     request.VehicleID,
		ScheduledDate: utils.TruncateToDay(scheduledDate),
		Status:        ServiceStatusScheduled,
		Notes:         utils.SanitizeString(request.Notes),
	}
	if err := ms.store.CreateServiceWindow(window); err != nil {
		logger.Error("Failed to create service window", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	ms.invalidator.OnFleetMutated(locationID)
	return &window, nil
}

// UpdateServiceStatus completes or cancels an existing service window.
func (ms *maintenanceService) UpdateServiceStatus(serviceID string, status ServiceStatus) (
	*ServiceWindow, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if status != ServiceStatusCompleted && status != ServiceStatusCancelled {
		return nil, &ErrorInvalidServiceStatus
	}

	window, err := ms.store.GetServiceWindowByID(serviceID)
	if err != nil {
		logger.Error("Failed to get service window", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if window == nil {
		return nil, &ErrorServiceWindowNotFound
	}
	if window.Status != ServiceStatusScheduled {
		return nil, &ErrorServiceWindowClosed
	}

	if err := ms.store.UpdateServiceWindowStatus(serviceID, status); err != nil {
		logger.Error("Failed to update service window", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	window.Status = status

	// Cancelling a window frees the day again, completing one does the same
	// for a window that has not started. Either way cached availability for
	// the vehicle's location is stale.
	locationID, err := ms.store.GetVehicleLocation(window.VehicleID)
	if err != nil {
		logger.Warn("Failed to resolve vehicle location for invalidation", log.Error(err))
	} else {
		ms.invalidator.OnFleetMutated(locationID)
	}
	return window, nil
}

// FetchScheduledServices adapts stored windows to the availability view.
func (ms *maintenanceService) FetchScheduledServices(vehicleIDs []string, startDate,
	endDate time.Time) ([]availability.ServiceWindow, error) {
	windows, err := ms.store.GetScheduledServices(vehicleIDs, startDate, endDate)
	if err != nil {
		return nil, err
	}

	blocking := make([]availability.ServiceWindow, 0, len(windows))
	for _, window := range windows {
		blocking = append(blocking, availability.ServiceWindow{
			ServiceID:     window.ID,
			VehicleID:     window.VehicleID,
			ScheduledDate: window.ScheduledDate,
			Status:        string(window.Status),
		})
	}
	return blocking, nil
}
