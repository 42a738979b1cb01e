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
	"encoding/json"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// MaintenanceHandler exposes the service window endpoints.
type MaintenanceHandler struct {
	service MaintenanceServiceInterface
}

// NewMaintenanceHandler creates a handler over the given maintenance service.
func NewMaintenanceHandler(service MaintenanceServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// HandleServiceWindowPostRequest handles POST /service-windows requests.
func (mh *MaintenanceHandler) HandleServiceWindowPostRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MaintenanceHandler"))

	request, err := utils.DecodeJSONBody[ServiceWindowRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	window, svcErr := mh.service.ScheduleService(request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(window); err != nil {
		logger.Error("Failed to encode service window response", log.Error(err))
	}
}

// HandleServiceWindowPutRequest handles PUT /service-windows/{id} requests.
func (mh *MaintenanceHandler) HandleServiceWindowPutRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "MaintenanceHandler"))

	serviceID := utils.SanitizeString(r.PathValue("id"))
	request, err := utils.DecodeJSONBody[ServiceWindowStatusRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	window, svcErr := mh.service.UpdateServiceStatus(serviceID, request.Status)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(window); err != nil {
		logger.Error("Failed to encode service window response", log.Error(err))
	}
}

// writeServiceErrorResponse maps a service error to the JSON error payload
// with the matching HTTP status code.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	switch {
	case svcErr.Type == serviceerror.ServerErrorType:
		status = http.StatusInternalServerError
	case svcErr.Code == ErrorServiceWindowNotFound.Code ||
		svcErr.Code == ErrorVehicleNotFound.Code:
		status = http.StatusNotFound
	case svcErr.Code == ErrorServiceWindowClosed.Code:
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
