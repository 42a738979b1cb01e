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

package availability

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// AvailabilityHandler exposes the availability query endpoint.
type AvailabilityHandler struct {
	service AvailabilityServiceInterface
}

// NewAvailabilityHandler creates a handler over the given availability service.
func NewAvailabilityHandler(service AvailabilityServiceInterface) *AvailabilityHandler {
	return &AvailabilityHandler{service: service}
}

// HandleCheckAvailability handles GET /availability requests.
func (ah *AvailabilityHandler) HandleCheckAvailability(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "AvailabilityHandler"))

	query, parseErr := parseAvailabilityQuery(r)
	if parseErr != "" {
		utils.WriteJSONError(w, ErrorInvalidAvailabilityQuery.Code, parseErr, http.StatusBadRequest)
		return
	}

	result, svcErr := ah.service.CheckAvailability(query)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.Error("Failed to encode availability response", log.Error(err))
	}
}

// parseAvailabilityQuery reads the query string into an AvailabilityQuery.
// A non-empty second return value describes the first malformed parameter.
func parseAvailabilityQuery(r *http.Request) (*AvailabilityQuery, string) {
	params := r.URL.Query()
	query := &AvailabilityQuery{
		LocationID:  utils.SanitizeString(params.Get(queryParamLocation)),
		VehicleType: utils.SanitizeString(params.Get(queryParamVehicleType)),
	}

	startDate, err := utils.ParseDate(params.Get(queryParamStartDate))
	if err != nil {
		return nil, "start_date must be a valid ISO date (YYYY-MM-DD)"
	}
	query.StartDate = startDate

	endDate, err := utils.ParseDate(params.Get(queryParamEndDate))
	if err != nil {
		return nil, "end_date must be a valid ISO date (YYYY-MM-DD)"
	}
	query.EndDate = endDate

	if raw := params.Get(queryParamMinRate); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "min_daily_rate must be a number"
		}
		query.MinDailyRate = &rate
	}
	if raw := params.Get(queryParamMaxRate); raw != "" {
		rate, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, "max_daily_rate must be a number"
		}
		query.MaxDailyRate = &rate
	}

	return query, ""
}

// writeServiceErrorResponse maps a service error to the JSON error payload
// with the matching HTTP status code.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	switch {
	case svcErr.Type == serviceerror.ServerErrorType:
		status = http.StatusInternalServerError
	case svcErr.Code == ErrorLocationNotFound.Code:
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
