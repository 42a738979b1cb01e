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

package location

import (
	"fmt"
	"strconv"

	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// locationStoreInterface defines the persistence contract for locations.
type locationStoreInterface interface {
	GetLocationList() ([]Location, error)
	GetLocationByID(locationID string) (*Location, error)
	LocationExists(locationID string) (bool, error)
}

// locationStore is the database backed implementation of the location store.
type locationStore struct {
	dbProvider provider.DBProviderInterface
}

// newLocationStore creates a location store over the rental database.
func newLocationStore() locationStoreInterface {
	return &locationStore{dbProvider: provider.GetDBProvider()}
}

// GetLocationList retrieves every rental location.
func (st *locationStore) GetLocationList() ([]Location, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetLocationList)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	locations := make([]Location, 0, len(results))
	for _, row := range results {
		locations = append(locations, buildLocationFromResultRow(row))
	}
	return locations, nil
}

// GetLocationByID retrieves a location by its id. A nil location with a nil
// error means no row matched.
func (st *locationStore) GetLocationByID(locationID string) (*Location, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetLocationByID, locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	location := buildLocationFromResultRow(results[0])
	return &location, nil
}

// LocationExists reports whether a location with the given id exists.
func (st *locationStore) LocationExists(locationID string) (bool, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryCheckLocationExists, locationID)
	if err != nil {
		return false, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return false, nil
	}

	count, err := strconv.ParseInt(utils.ParseStringValue(results[0]["count"]), 10, 64)
	if err != nil {
		return false, fmt.Errorf("failed to parse count: %w", err)
	}
	return count > 0, nil
}

// buildLocationFromResultRow maps a result row to a Location.
func buildLocationFromResultRow(row map[string]interface{}) Location {
	return Location{
		ID:      utils.ParseStringValue(row["location_id"]),
		Name:    utils.ParseStringValue(row["name"]),
		City:    utils.ParseStringValue(row["city"]),
		Address: utils.ParseStringValue(row["address"]),
	}
}
