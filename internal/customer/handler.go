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
	"encoding/json"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// CustomerHandler exposes the customer endpoints.
type CustomerHandler struct {
	service CustomerServiceInterface
}

// NewCustomerHandler creates a handler over the given customer service.
func NewCustomerHandler(service CustomerServiceInterface) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// HandleCustomerPostRequest handles POST /customers requests.
func (ch *CustomerHandler) HandleCustomerPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CustomerHandler"))

	request, err := utils.DecodeJSONBody[CustomerRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	customer, svcErr := ch.service.RegisterCustomer(request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(customer); err != nil {
		logger.Error("Failed to encode customer response", log.Error(err))
	}
}

// HandleCustomerGetRequest handles GET /customers/{id} requests.
func (ch *CustomerHandler) HandleCustomerGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "CustomerHandler"))

	customerID := utils.SanitizeString(r.PathValue("id"))
	customer, svcErr := ch.service.GetCustomer(customerID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(customer); err != nil {
		logger.Error("Failed to encode customer response", log.Error(err))
	}
}

// writeServiceErrorResponse maps a service error to the JSON error payload
// with the matching HTTP status code.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	switch {
	case svcErr.Type == serviceerror.ServerErrorType:
		status = http.StatusInternalServerError
	case svcErr.Code == ErrorCustomerNotFound.Code:
		status = http.StatusNotFound
	case svcErr.Code == ErrorEmailAlreadyRegistered.Code:
		status = http.StatusConflict
	}

	errResp := apierror.ErrorResponse{
		Code:        svcErr.Code,
		Message:     svcErr.Error,
		Description: svcErr.ErrorDescription,
		Details:     svcErr.Details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		log.GetLogger().Error("Failed to encode error response", log.Error(err))
	}
}
