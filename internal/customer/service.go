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

// Package customer manages renter registration and lookup.
package customer

import (
	"strings"

	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// CustomerServiceInterface defines the customer management contract.
type CustomerServiceInterface interface {
	RegisterCustomer(request *CustomerRequest) (*Customer, *serviceerror.ServiceError)
	GetCustomer(customerID string) (*Customer, *serviceerror.ServiceError)
	CustomerExists(customerID string) (bool, error)
}

// customerService is the store backed customer service.
type customerService struct {
	store customerStoreInterface
}

// NewCustomerService creates a customer service.
func NewCustomerService() CustomerServiceInterface {
	return &customerService{store: newCustomerStore()}
}

// RegisterCustomer validates and persists a new customer.
func (cs *customerService) RegisterCustomer(request *CustomerRequest) (
	*Customer, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateCustomerRequest(request); svcErr != nil {
		return nil, svcErr
	}

	taken, err := cs.store.EmailExists(request.Email)
	if err != nil {
		logger.Error("Failed to check email uniqueness", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if taken {
		return nil, &ErrorEmailAlreadyRegistered
	}

	customer := Customer{
		ID:            utils.GenerateUUID(),
		Name:          utils.SanitizeString(request.Name),
		Email:         utils.SanitizeString(request.Email),
		Phone:         utils.SanitizeString(request.Phone),
		LicenseNumber: utils.SanitizeString(request.LicenseNumber),
	}
	if err := cs.store.CreateCustomer(customer); err != nil {
		logger.Error("Failed to create customer", log.Error(err))
		return nil, &ErrorInternalServerError
	}

	return &customer, nil
}

// GetCustomer retrieves a customer by id.
func (cs *customerService) GetCustomer(customerID string) (*Customer, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if customerID == "" {
		return nil, &ErrorInvalidCustomerID
	}

	customer, err := cs.store.GetCustomerByID(customerID)
	if err != nil {
		logger.Error("Failed to get customer", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	if customer == nil {
		return nil, &ErrorCustomerNotFound
	}
	return customer, nil
}

// CustomerExists reports whether the customer exists.
func (cs *customerService) CustomerExists(customerID string) (bool, error) {
	if customerID == "" {
		return false, nil
	}
	return cs.store.CustomerExists(customerID)
}

// validateCustomerRequest checks the registration payload and reports all
// violations together.
func validateCustomerRequest(request *CustomerRequest) *serviceerror.ServiceError {
	violations := []string{}

	if strings.TrimSpace(request.Name) == "" {
		violations = append(violations, "name is required")
	}
	email := strings.TrimSpace(request.Email)
	if email == "" {
		violations = append(violations, "email is required")
	} else if !strings.Contains(email, "@") || strings.HasPrefix(email, "@") ||
		strings.HasSuffix(email, "@") {
		violations = append(violations, "email is not a valid address")
	}

	if len(violations) > 0 {
		return serviceerror.DetailedServiceError(ErrorInvalidCustomerRequest, violations)
	}
	return nil
}
