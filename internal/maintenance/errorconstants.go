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

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for maintenance operations.
var (
	// ErrorServiceWindowNotFound is returned when the service window does not exist.
	ErrorServiceWindowNotFound = serviceerror.ServiceError{
		Code:             "MNT-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Service window not found",
		ErrorDescription: "No service window exists with the requested id",
	}
	// ErrorVehicleRequired is returned when the vehicle id is missing.
	ErrorVehicleRequired = serviceerror.ServiceError{
		Code:             "MNT-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Vehicle required",
		ErrorDescription: "A vehicle id is required to schedule a service window",
	}
	// ErrorVehicleNotFound is returned when the vehicle does not exist.
	ErrorVehicleNotFound = serviceerror.ServiceError{
		Code:             "MNT-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Vehicle not found",
		ErrorDescription: "No vehicle exists with the requested id",
	}
	// ErrorInvalidScheduledDate is returned when the date cannot be parsed.
	ErrorInvalidScheduledDate = serviceerror.ServiceError{
		Code:             "MNT-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid scheduled date",
		ErrorDescription: "The scheduled date must be a valid ISO date (YYYY-MM-DD)",
	}
	// ErrorScheduledDateInPast is returned when the date has already passed.
	ErrorScheduledDateInPast = serviceerror.ServiceError{
		Code:             "MNT-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Scheduled date in past",
		ErrorDescription: "The scheduled date must not be in the past",
	}
	// ErrorInvalidServiceStatus is returned for an unsupported status transition.
	ErrorInvalidServiceStatus = serviceerror.ServiceError{
		Code:             "MNT-1006",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid service status",
		ErrorDescription: "A service window can only be completed or cancelled",
	}
	// ErrorServiceWindowClosed is returned when the window is no longer scheduled.
	ErrorServiceWindowClosed = serviceerror.ServiceError{
		Code:             "MNT-1007",
		Type:             serviceerror.ClientErrorType,
		Error:            "Service window closed",
		ErrorDescription: "The service window has already been completed or cancelled",
	}
	// ErrorInvalidRequestFormat is returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "MNT-1008",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is not valid JSON",
	}
)

// Server errors for maintenance operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "MNT-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the maintenance request",
	}
)
