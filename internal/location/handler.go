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
	"encoding/json"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// LocationHandler exposes the location endpoints.
type LocationHandler struct {
	service LocationServiceInterface
}

// NewLocationHandler creates a handler over the given location service.
func NewLocationHandler(service LocationServiceInterface) *LocationHandler {
	return &LocationHandler{service: service}
}

// HandleLocationListRequest handles GET /locations requests.
func (lh *LocationHandler) HandleLocationListRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LocationHandler"))

	locations, svcErr := lh.service.GetLocationList()
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(locations); err != nil {
		logger.Error("Failed to encode location list response", log.Error(err))
	}
}

// HandleLocationGetRequest handles GET /locations/{id} requests.
func (lh *LocationHandler) HandleLocationGetRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "LocationHandler"))

	locationID := utils.SanitizeString(r.PathValue("id"))
	loc, svcErr := lh.service.GetLocation(locationID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loc); err != nil {
		logger.Error("Failed to encode location response", log.Error(err))
	}
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
