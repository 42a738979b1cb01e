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

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for availability operations.
var (
	// ErrorInvalidAvailabilityQuery is returned when one or more validation
	// rules fail. The violated rules are carried in the error details.
	ErrorInvalidAvailabilityQuery = serviceerror.ServiceError{
		Code:             "AVL-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid availability query",
		ErrorDescription: "The availability query failed one or more validation rules",
	}
	// ErrorLocationNotFound is returned when the queried location does not exist.
	ErrorLocationNotFound = serviceerror.ServiceError{
		Code:             "AVL-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Location not found",
		ErrorDescription: "No rental location exists with the requested id",
	}
)

// Server errors for availability operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "AVL-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while resolving availability",
	}
)

// Validation rule messages surfaced in the details of AVL-1001.
const (
	validationMsgLocationRequired = "location_id is required"
	validationMsgEndAfterStart    = "end_date must be after start_date"
	validationMsgStartNotPast     = "start_date must not be in the past"
	validationMsgRangeTooLong     = "date range exceeds the maximum booking window"
	validationMsgNegativeRate     = "daily rate bounds must not be negative"
	validationMsgRateBoundsOrder  = "min_daily_rate must not exceed max_daily_rate"
)
