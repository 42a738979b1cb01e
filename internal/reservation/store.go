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

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caravel-rentals/caravel/internal/system/database/model"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// reservationStoreInterface defines the persistence contract for reservations.
type reservationStoreInterface interface {
	CreateReservation(reservation Reservation) error
	GetReservationByID(reservationID string) (*Reservation, error)
	UpdateReservation(reservation Reservation) error
	UpdateReservationStatus(reservationID string, status ReservationStatus) error
	GetReservationsByCustomer(customerID string) ([]Reservation, error)
	GetActiveReservationsByVehicle(vehicleID string) ([]Reservation, error)
	GetActiveReservations(vehicleIDs []string) ([]Reservation, error)
}

// reservationStore is the database backed implementation of the reservation
// store.
type reservationStore struct {
	dbProvider provider.DBProviderInterface
}

// newReservationStore creates a reservation store over the rental database.
func newReservationStore() reservationStoreInterface {
	return &reservationStore{dbProvider: provider.GetDBProvider()}
}

// CreateReservation inserts a new reservation row.
func (st *reservationStore) CreateReservation(reservation Reservation) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateReservation, reservation.ID, reservation.VehicleID,
		reservation.CustomerID, reservation.LocationID, utils.FormatDate(reservation.StartDate),
		utils.FormatDate(reservation.EndDate), string(reservation.Status),
		reservation.DailyRate, reservation.TotalCost)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetReservationByID retrieves a reservation by its id. A nil reservation
// with a nil error means no row matched.
func (st *reservationStore) GetReservationByID(reservationID string) (*Reservation, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetReservationByID, reservationID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	reservation, err := buildReservationFromResultRow(results[0])
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// UpdateReservation rewrites the mutable fields of an existing reservation.
func (st *reservationStore) UpdateReservation(reservation Reservation) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryUpdateReservation, reservation.VehicleID,
		reservation.LocationID, utils.FormatDate(reservation.StartDate),
		utils.FormatDate(reservation.EndDate), string(reservation.Status),
		reservation.DailyRate, reservation.TotalCost, reservation.ID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// UpdateReservationStatus sets the status of an existing reservation.
func (st *reservationStore) UpdateReservationStatus(reservationID string,
	status ReservationStatus) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryUpdateReservationStatus, string(status), reservationID)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetReservationsByCustomer retrieves a customer's reservations.
func (st *reservationStore) GetReservationsByCustomer(customerID string) ([]Reservation, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetReservationsByCustomer, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildReservationsFromResultRows(results)
}

// GetActiveReservationsByVehicle retrieves the blocking reservations for one
// vehicle.
func (st *reservationStore) GetActiveReservationsByVehicle(vehicleID string) (
	[]Reservation, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetActiveReservationsByVehicle, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildReservationsFromResultRows(results)
}

// GetActiveReservations retrieves the blocking reservations across a vehicle
// list.
func (st *reservationStore) GetActiveReservations(vehicleIDs []string) ([]Reservation, error) {
	if len(vehicleIDs) == 0 {
		return []Reservation{}, nil
	}

	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	args := make([]interface{}, 0, len(vehicleIDs))
	placeholders := make([]string, 0, len(vehicleIDs))
	for _, vehicleID := range vehicleIDs {
		args = append(args, vehicleID)
		placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
	}
	query := model.DBQuery{
		ID:    queryGetActiveReservationsID,
		Query: fmt.Sprintf(queryGetActiveReservationsBase, strings.Join(placeholders, ", ")),
	}

	results, err := dbClient.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	return buildReservationsFromResultRows(results)
}

// buildReservationsFromResultRows maps result rows to reservations.
func buildReservationsFromResultRows(rows []map[string]interface{}) ([]Reservation, error) {
	reservations := make([]Reservation, 0, len(rows))
	for _, row := range rows {
		reservation, err := buildReservationFromResultRow(row)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

// buildReservationFromResultRow maps a result row to a Reservation.
func buildReservationFromResultRow(row map[string]interface{}) (Reservation, error) {
	startDate, err := parseDateColumn(row["start_date"])
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to parse start date: %w", err)
	}
	endDate, err := parseDateColumn(row["end_date"])
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to parse end date: %w", err)
	}
	dailyRate, err := strconv.ParseFloat(utils.ParseStringValue(row["daily_rate"]), 64)
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to parse daily rate: %w", err)
	}
	totalCost, err := strconv.ParseFloat(utils.ParseStringValue(row["total_cost"]), 64)
	if err != nil {
		return Reservation{}, fmt.Errorf("failed to parse total cost: %w", err)
	}

	return Reservation{
		ID:         utils.ParseStringValue(row["reservation_id"]),
		VehicleID:  utils.ParseStringValue(row["vehicle_id"]),
		CustomerID: utils.ParseStringValue(row["customer_id"]),
		LocationID: utils.ParseStringValue(row["location_id"]),
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     ReservationStatus(utils.ParseStringValue(row["status"])),
		DailyRate:  dailyRate,
		TotalCost:  totalCost,
	}, nil
}

// parseDateColumn interprets the driver specific representations of a DATE
// column.
func parseDateColumn(value interface{}) (time.Time, error) {
	if t, ok := value.(time.Time); ok {
		return utils.TruncateToDay(t), nil
	}
	raw := utils.ParseStringValue(value)
	parsed, err := utils.ParseDate(raw)
	if err == nil {
		return parsed, nil
	}
	fromTimestamp, tsErr := time.Parse(time.RFC3339, raw)
	if tsErr != nil {
		return time.Time{}, err
	}
	return utils.TruncateToDay(fromTimestamp), nil
}
