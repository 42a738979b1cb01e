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

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for vehicle operations.
var (
	// ErrorVehicleNotFound is returned when the requested vehicle does not exist.
	ErrorVehicleNotFound = serviceerror.ServiceError{
		Code:             "VEH-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Vehicle not found",
		ErrorDescription: "No vehicle exists with the requested id",
	}
	// ErrorLocationRequired is returned when a fleet listing omits the location.
	ErrorLocationRequired = serviceerror.ServiceError{
		Code:             "VEH-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Location required",
		ErrorDescription: "A location id is required to list vehicles",
	}
	// ErrorInvalidRateBound is returned when a rate filter is not a number.
	ErrorInvalidRateBound = serviceerror.ServiceError{
		Code:             "VEH-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid rate bound",
		ErrorDescription: "Daily rate bounds must be numeric",
	}
)

// Server errors for vehicle operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "VEH-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the vehicle request",
	}
)
