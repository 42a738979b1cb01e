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

package customer

import (
	"fmt"
	"strconv"

	"github.com/caravel-rentals/caravel/internal/system/database/model"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// customerStoreInterface defines the persistence contract for customers.
type customerStoreInterface interface {
	CreateCustomer(customer Customer) error
	GetCustomerByID(customerID string) (*Customer, error)
	CustomerExists(customerID string) (bool, error)
	EmailExists(email string) (bool, error)
}

// customerStore is the database backed implementation of the customer store.
type customerStore struct {
	dbProvider provider.DBProviderInterface
}

// newCustomerStore creates a customer store over the rental database.
func newCustomerStore() customerStoreInterface {
	return &customerStore{dbProvider: provider.GetDBProvider()}
}

// CreateCustomer inserts a new customer row.
func (st *customerStore) CreateCustomer(customer Customer) error {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return fmt.Errorf("failed to get database client: %w", err)
	}

	_, err = dbClient.Execute(queryCreateCustomer, customer.ID, customer.Name, customer.Email,
		customer.Phone, customer.LicenseNumber)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}
	return nil
}

// GetCustomerByID retrieves a customer by its id. A nil customer with a nil
// error means no row matched.
func (st *customerStore) GetCustomerByID(customerID string) (*Customer, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return nil, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(queryGetCustomerByID, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	customer := buildCustomerFromResultRow(results[0])
	return &customer, nil
}

// CustomerExists reports whether a customer with the given id exists.
func (st *customerStore) CustomerExists(customerID string) (bool, error) {
	return st.countExceedsZero(queryCheckCustomerExists, customerID)
}

// EmailExists reports whether a customer is already registered with the email.
func (st *customerStore) EmailExists(email string) (bool, error) {
	return st.countExceedsZero(queryCheckEmailExists, email)
}

func (st *customerStore) countExceedsZero(query model.DBQuery, arg string) (bool, error) {
	dbClient, err := st.dbProvider.GetDBClient(databaseName)
	if err != nil {
		return false, fmt.Errorf("failed to get database client: %w", err)
	}

	results, err := dbClient.Query(query, arg)
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

// buildCustomerFromResultRow maps a result row to a Customer.
func buildCustomerFromResultRow(row map[string]interface{}) Customer {
	return Customer{
		ID:            utils.ParseStringValue(row["customer_id"]),
		Name:          utils.ParseStringValue(row["name"]),
		Email:         utils.ParseStringValue(row["email"]),
		Phone:         utils.ParseStringValue(row["phone"]),
		LicenseNumber: utils.ParseStringValue(row["license_number"]),
	}
}
