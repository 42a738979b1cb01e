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

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for location operations.
var (
	// ErrorLocationNotFound is returned when the requested location does not exist.
	ErrorLocationNotFound = serviceerror.ServiceError{
		Code:             "LOC-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Location not found",
		ErrorDescription: "No rental location exists with the requested id",
	}
	// ErrorInvalidLocationID is returned when the location id is empty.
	ErrorInvalidLocationID = serviceerror.ServiceError{
		Code:             "LOC-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid location id",
		ErrorDescription: "The location id must not be empty",
	}
)

// Server errors for location operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "LOC-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the location request",
	}
)
