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

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for reservation operations.
var (
	// ErrorReservationNotFound is returned when the reservation does not exist.
	ErrorReservationNotFound = serviceerror.ServiceError{
		Code:             "RES-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Reservation not found",
		ErrorDescription: "No reservation exists with the requested id",
	}
	// ErrorInvalidBookingRequest is returned when the booking payload fails
	// one or more validation rules. The violated rules are carried in the
	// error details.
	ErrorInvalidBookingRequest = serviceerror.ServiceError{
		Code:             "RES-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid booking request",
		ErrorDescription: "The booking request failed one or more validation rules",
	}
	// ErrorReservationConflict is returned when the vehicle is not free over
	// the requested dates.
	ErrorReservationConflict = serviceerror.ServiceError{
		Code:             "RES-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Reservation conflict",
		ErrorDescription: "The vehicle is not available over the requested dates",
	}
	// ErrorReservationClosed is returned when mutating a completed or
	// cancelled reservation.
	ErrorReservationClosed = serviceerror.ServiceError{
		Code:             "RES-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Reservation closed",
		ErrorDescription: "The reservation has already been completed or cancelled",
	}
	// ErrorCustomerNotFound is returned when the booking customer does not exist.
	ErrorCustomerNotFound = serviceerror.ServiceError{
		Code:             "RES-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Customer not found",
		ErrorDescription: "No customer exists with the requested id",
	}
	// ErrorVehicleNotFound is returned when the booked vehicle does not exist.
	ErrorVehicleNotFound = serviceerror.ServiceError{
		Code:             "RES-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Vehicle not found",
		ErrorDescription: "No vehicle exists with the requested id",
	}
	// ErrorVehicleUnavailable is returned when the vehicle is out of the fleet.
	ErrorVehicleUnavailable = serviceerror.ServiceError{
		Code:             "RES-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Vehicle unavailable",
		ErrorDescription: "The vehicle is currently out of the rentable fleet",
	}
	// ErrorInvalidRequestFormat is returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "RES-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is not valid JSON",
	}
)

// Server errors for reservation operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "RES-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the reservation request",
	}
)
