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

package vehicle

import (
	"fmt"
	"strconv"

	"github.com/caravel-rentals/caravel/internal/system/database/model"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// vehicleStoreInterface defines the persistence contract for vehicles.
type vehicleStoreInterface interface {
	GetVehicles(filter VehicleFilter) ([]Vehicle, error)
	GetVehicleByID(vehicleID string) (*Vehicle, error)
}

// vehicleStore is the database backed implementation of the vehicle store.
type vehicleStore struct {
	dbProvider provider.DBProviderInterface
}

// newVehicleStore creates a vehicle store over the rental database.
func newVehicleStore() vehicleStoreInterface {
	return &vehicleStore{dbProvider: provider.GetDBProvider()}
}

// GetVehicles retrieves the vehicles at a location matching the filter.
func (st *vehicleStore) GetVehicles(filter VehicleFilter) ([]Vehicle, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	queryText := queryGetVehiclesBase
	args := []interface{}{filter.LocationID}
	if filter.VehicleType != "" {
		args = append(args, filter.VehicleType)
		queryText += fmt.Sprintf(" AND TYPE = $%d", len(args))
	}
	if filter.MinRate != nil {
		args = append(args, *filter.MinRate)
		queryText += fmt.Sprintf(" AND DAILY_RATE >= $%d", len(args))
	}
	if filter.MaxRate != nil {
		args = append(args, *filter.MaxRate)
		queryText += fmt.Sprintf(" AND DAILY_RATE <= $%d", len(args))
	}
	query := model.DBQuery{ID: queryGetVehiclesID, Query: queryText}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	vehicles := make([]Vehicle, 0, len(results))
	for _, row := range results {
		vehicle, buildErr := buildVehicleFromResultRow(row)
		if buildErr != nil {
			return nil, buildErr
		}
		vehicles = append(vehicles, vehicle)
	}
	return vehicles, nil
}

// GetVehicleByID retrieves a vehicle by its id. A nil vehicle with a nil
// error means no row matched.
func (st *vehicleStore) GetVehicleByID(vehicleID string) (*Vehicle, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetVehicleByID, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	vehicle, err := buildVehicleFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// buildVehicleFromResultRow maps a result row to a Vehicle.
func buildVehicleFromResultRow(row map[string]interface{}) (Vehicle, error) {
	rate, err := strconv.ParseFloat(utils.ParseStringValue(row["daily_rate"]), 64)
	if err != nil {
		return Vehicle{}, fmt.Errorf("failed to parse daily rate: %w", err)
	}
	return Vehicle{
		ID:             utils.ParseStringValue(row["vehicle_id"]),
		HomeLocationID: utils.ParseStringValue(row["location_id"]),
		Type:           utils.ParseStringValue(row["type"]),
		Make:           utils.ParseStringValue(row["make"]),
		Model:          utils.ParseStringValue(row["model"]),
		DailyRate:      rate,
		Available:      parseBoolValue(row["available"]),
	}, nil
}

// parseBoolValue interprets the driver specific representations of a boolean
// column.
func parseBoolValue(value interface{}) bool {
	switch v := value.(type) {
	case bool:
		return v
	case int64:
		return v != 0
	default:
		parsed := utils.ParseStringValue(value)
		return parsed == "true" || parsed == "1" || parsed == "t"
	}
}
