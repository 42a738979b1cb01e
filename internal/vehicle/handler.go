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
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// VehicleHandler exposes the vehicle endpoints.
type VehicleHandler struct {
	service VehicleServiceInterface
}

// NewVehicleHandler creates a handler over the given vehicle service.
func NewVehicleHandler(service VehicleServiceInterface) *VehicleHandler {
	return &VehicleHandler{service: service}
}

// HandleVehicleListRequest handles GET /vehicles requests.
func (vh *VehicleHandler) HandleVehicleListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "VehicleHandler"))

	params := r.URL.Query()
	filter := VehicleFilter{
		LocationID:  utils.SanitizeString(params.Get("location")),
		VehicleType: utils.SanitizeString(params.Get("vehicle_type")),
	}
	if raw := params.Get("min_daily_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeServiceErrorResponse(w, &ErrorInvalidRateBound)
			return
		}
		filter.MinRate = &rate
	}
	if raw := params.Get("max_daily_rate"); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeServiceErrorResponse(w, &ErrorInvalidRateBound)
			return
		}
		filter.MaxRate = &rate
	}

	vehicles, svcErr := vh.service.GetVehicleList(filter)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vehicles); err != nil {
		logger.Error("Failed to encode vehicle list response", log.Error(err))
	}
}

// HandleVehicleGetRequest handles GET /vehicles/{id} requests.
func (vh *VehicleHandler) HandleVehicleGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "VehicleHandler"))

	vehicleID := utils.SanitizeString(r.PathValue("id"))
	vehicle, svcErr := vh.service.GetVehicle(vehicleID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(vehicle); err != nil {
		logger.Error("Failed to encode vehicle response", log.Error(err))
	}
}

// writeServiceErrorResponse maps a service error to the JSON error payload
// with the matching HTTP status code.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	switch {
	case svcErr.Type == serviceerror.ServerErrorType:
		status = http.StatusInternalServerError
	case svcErr.Code == ErrorVehicleNotFound.Code:
		status = http.StatusNotFound
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
