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

package maintenance

import (
	"fmt"
	"strings"
	"time"

	"github.com/caravel-rentals/caravel/internal/system/database/model"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// serviceStoreInterface defines the persistence contract for service windows.
type serviceStoreInterface interface {
	CreateServiceWindow(window ServiceWindow) error
	GetServiceWindowByID(serviceID string) (*ServiceWindow, error)
	UpdateServiceWindowStatus(serviceID string, status ServiceStatus) error
	GetScheduledServices(vehicleIDs []string, startDate, endDate time.Time) ([]ServiceWindow, error)
	GetVehicleLocation(vehicleID string) (string, error)
}

// serviceStore is the database backed implementation of the service store.
type serviceStore struct {
	dbProvider provider.DBProviderInterface
}

// newServiceStore creates a service window store over the rental database.
func newServiceStore() serviceStoreInterface {
	return &serviceStore{dbProvider: provider.GetDBProvider()}
}

// CreateServiceWindow inserts a new service window row.
func (st *serviceStore) CreateServiceWindow(window ServiceWindow) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateServiceWindow, window.ID, window.VehicleID,
		utils.FormatDate(window.ScheduledDate), string(window.Status), window.Notes)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetServiceWindowByID retrieves a service window by its id. A nil window
// with a nil error means no row matched.
func (st *serviceStore) GetServiceWindowByID(serviceID string) (*ServiceWindow, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetServiceWindowByID, serviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	window, err := buildServiceWindowFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	return &window, nil
}

// UpdateServiceWindowStatus sets the status of an existing service window.
func (st *serviceStore) UpdateServiceWindowStatus(serviceID string, status ServiceStatus) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryUpdateServiceWindowStatus, string(status), serviceID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetScheduledServices retrieves the scheduled service windows for the given
// vehicles whose date falls in [startDate, endDate).
func (st *serviceStore) GetScheduledServices(vehicleIDs []string, startDate,
	endDate time.Time) ([]ServiceWindow, error) {
	if len(vehicleIDs) == 0 {
		return []ServiceWindow{}, nil
	}

	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	args := []interface{}{string(ServiceStatusScheduled), utils.FormatDate(startDate),
		utils.FormatDate(endDate)}
	placeholders := make([]string, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		args = append(args, vehicleID)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	query := model.DBQuery{
		ID:    queryGetScheduledServicesID,
		Query: fmt.Sprintf(queryGetScheduledServicesBase, strings.Join(placeholders, ", ")),
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}

	windows := make([]ServiceWindow, 0, len(results))
	for _, row := range results {
		window, buildErr := buildServiceWindowFromResultRow(row)
		if buildErr != nil {
			return nil, buildErr
		}
		windows = append(windows, window)
	}
	return windows, nil
}

// GetVehicleLocation resolves the home location of a vehicle. An empty string
// with a nil error means the vehicle does not exist.
func (st *serviceStore) GetVehicleLocation(vehicleID string) (string, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return "", fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetVehicleLocation, vehicleID)
	if err != nil {
		return "", fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return "", nil
	}
	return utils.ParseStringValue(results[0]["location_id"]), nil
}

// buildServiceWindowFromResultRow maps a result row to a ServiceWindow.
func buildServiceWindowFromResultRow(row map[string]interface{}) (ServiceWindow, error) {
	scheduled, err := utils.ParseDate(utils.ParseStringValue(row["scheduled_date"]))
	if err != nil {
		// Postgres returns timestamps for DATE columns through some drivers.
		parsed, tsErr := time.Parse(time.RFC3339, utils.ParseStringValue(row["scheduled_date"]))
		if tsErr != nil {
			return ServiceWindow{}, fmt.Errorf("failed to parse scheduled date: %w", err)
		}
		scheduled = parsed
	}
	return ServiceWindow{
		ID:            utils.ParseStringValue(row["service_id"]),
		VehicleID:     utils.ParseStringValue(row["vehicle_id"]),
		ScheduledDate: utils.TruncateToDay(scheduled),
		Status:        ServiceStatus(utils.ParseStringValue(row["status"])),
		Notes:         utils.ParseStringValue(row["notes"]),
	}, nil
}
