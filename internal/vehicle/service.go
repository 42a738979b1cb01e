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

// Package vehicle manages the rentable fleet.
package vehicle

import (
	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// VehicleServiceInterface defines the vehicle management contract.
type VehicleServiceInterface interface {
	GetVehicleList(filter VehicleFilter) ([]Vehicle, *serviceerror.ServiceError)
	GetVehicle(vehicleID string) (*Vehicle, *serviceerror.ServiceError)

	// FetchVehicles supplies availability resolution with candidate vehicles.
	FetchVehicles(locationID, vehicleType string, minRate, maxRate *float64) (
		[]availability.Vehicle, error)
}

// vehicleService is the store backed vehicle service. Fleet listings feed the
// availability resolver, so they always read fresh rows rather than a cache.
type vehicleService struct {
	store vehicleStoreInterface
}

// NewVehicleService creates a vehicle service.
func NewVehicleService() VehicleServiceInterface {
	return &vehicleService{store: newVehicleStore()}
}

// GetVehicleList retrieves the vehicles matching the filter.
func (vs *vehicleService) GetVehicleList(filter VehicleFilter) (
	[]Vehicle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if filter.LocationID == "" {
		return nil, &ErrorLocationRequired
	}

	vehicles, err := vs.store.GetVehicles(filter)
	if err != nil {
		logger.Error("Failed to list vehicles", log.Error(err),
			log.String(log.LoggerKeyLocationID, filter.LocationID))
		return nil, &ErrorInternalServerError
	}
	return vehicles, nil
}

// GetVehicle retrieves a single vehicle by id.
func (vs *vehicleService) GetVehicle(vehicleID string) (*Vehicle, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	vehicle, err := vs.store.GetVehicleByID(vehicleID)
	if err != nil {
		logger.Error("Failed to get vehicle", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if vehicle == nil {
		return nil, &ErrorVehicleNotFound
	}
	return vehicle, nil
}

// FetchVehicles adapts the fleet listing to the availability candidate view.
func (vs *vehicleService) FetchVehicles(locationID, vehicleType string,
	minRate, maxRate *float64) ([]availability.Vehicle, error) {
	vehicles, err := vs.store.GetVehicles(VehicleFilter{
		LocationID:  locationID,
		VehicleType: vehicleType,
		MinRate:     minRate,
		MaxRate:     maxRate,
	})
	if err != nil {
		return nil, err
	}

	candidates := make([]availability.Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		candidates = append(candidates, availability.Vehicle{
			ID:             vehicle.ID,
			HomeLocationID: vehicle.HomeLocationID,
			Type:           vehicle.Type,
			Make:           vehicle.Make,
			Model:          vehicle.Model,
			DailyRate:      vehicle.DailyRate,
			Available:      vehicle.Available,
		})
	}
	return candidates, nil
}
