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
	"encoding/json"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/error/apierror"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/utils"
)

// ReservationHandler exposes the booking endpoints.
type ReservationHandler struct {
	service ReservationServiceInterface
}

// NewReservationHandler creates a handler over the given reservation service.
func NewReservationHandler(service ReservationServiceInterface) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// HandleReservationPostRequest handles POST /reservations requests.
func (rh *ReservationHandler) HandleReservationPostRequest(w http.ResponseWriter, r *http.Request) {
	request, err := utils.DecodeJSONBody[ReservationRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	reservation, svcErr := rh.service.CreateReservation(request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusCreated, reservation)
}

// HandleReservationGetRequest handles GET /reservations/{id} requests.
func (rh *ReservationHandler) HandleReservationGetRequest(w http.ResponseWriter, r *http.Request) {
	reservationID := utils.SanitizeString(r.PathValue("id"))
	reservation, svcErr := rh.service.GetReservation(reservationID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, reservation)
}

// HandleReservationPutRequest handles PUT /reservations/{id} requests.
func (rh *ReservationHandler) HandleReservationPutRequest(w http.ResponseWriter, r *http.Request) {
	reservationID := utils.SanitizeString(r.PathValue("id"))
	request, err := utils.DecodeJSONBody[ReservationUpdateRequest](r)
	if err != nil {
		writeServiceErrorResponse(w, &ErrorInvalidRequestFormat)
		return
	}

	reservation, svcErr := rh.service.ModifyReservation(reservationID, request)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, reservation)
}

// HandleReservationDeleteRequest handles DELETE /reservations/{id} requests.
func (rh *ReservationHandler) HandleReservationDeleteRequest(w http.ResponseWriter,
	r *http.Request) {
	reservationID := utils.SanitizeString(r.PathValue("id"))
	reservation, svcErr := rh.service.CancelReservation(reservationID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, reservation)
}

// HandleCustomerReservationsRequest handles GET /customers/{id}/reservations
// requests.
func (rh *ReservationHandler) HandleCustomerReservationsRequest(w http.ResponseWriter,
	r *http.Request) {
	customerID := utils.SanitizeString(r.PathValue("id"))
	history, svcErr := rh.service.GetCustomerReservations(customerID)
	if svcErr != nil {
		writeServiceErrorResponse(w, svcErr)
		return
	}
	writeJSONResponse(w, http.StatusOK, history)
}

// writeJSONResponse encodes the payload with the given status code.
func writeJSONResponse(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Failed to encode reservation response", log.Error(err))
	}
}

// writeServiceErrorResponse maps a service error to the JSON error payload
// with the matching HTTP status code.
func writeServiceErrorResponse(w http.ResponseWriter, svcErr *serviceerror.ServiceError) {
	status := http.StatusBadRequest
	switch {
	case svcErr.Type == serviceerror.ServerErrorType:
		status = http.StatusInternalServerError
	case svcErr.Code == ErrorReservationNotFound.Code ||
		svcErr.Code == ErrorCustomerNotFound.Code ||
		svcErr.Code == ErrorVehicleNotFound.Code:
		status = http.StatusNotFound
	case svcErr.Code == ErrorReservationConflict.Code ||
		svcErr.Code == ErrorReservationClosed.Code ||
		svcErr.Code == ErrorVehicleUnavailable.Code:
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
