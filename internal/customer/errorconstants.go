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

package customer

import "github.com/caravel-rentals/caravel/internal/system/error/serviceerror"

// Client errors for customer operations.
var (
	// ErrorCustomerNotFound is returned when the requested customer does not exist.
	ErrorCustomerNotFound = serviceerror.ServiceError{
		Code:             "CUS-1001",
		Type:             serviceerror.ClientErrorType,
		Error:            "Customer not found",
		ErrorDescription: "No customer exists with the requested id",
	}
	// ErrorInvalidCustomerID is returned when the customer id is empty.
	ErrorInvalidCustomerID = serviceerror.ServiceError{
		Code:             "CUS-1002",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid customer id",
		ErrorDescription: "The customer id must not be empty",
	}
	// ErrorInvalidCustomerRequest is returned when the registration payload
	// fails one or more validation rules.
	ErrorInvalidCustomerRequest = serviceerror.ServiceError{
		Code:             "CUS-1003",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid customer request",
		ErrorDescription: "The customer registration failed one or more validation rules",
	}
	// ErrorEmailAlreadyRegistered is returned on a duplicate email registration.
	ErrorEmailAlreadyRegistered = serviceerror.ServiceError{
		Code:             "CUS-1004",
		Type:             serviceerror.ClientErrorType,
		Error:            "Email already registered",
		ErrorDescription: "A customer is already registered with the given email",
	}
	// ErrorInvalidRequestFormat is returned when the request body cannot be parsed.
	ErrorInvalidRequestFormat = serviceerror.ServiceError{
		Code:             "CUS-1005",
		Type:             serviceerror.ClientErrorType,
		Error:            "Invalid request format",
		ErrorDescription: "The request body is not valid JSON",
	}
)

// Server errors for customer operations.
var (
	// ErrorInternalServerError is the generic server side failure.
	ErrorInternalServerError = serviceerror.ServiceError{
		Code:             "CUS-5000",
		Type:             serviceerror.ServerErrorType,
		Error:            "Internal server error",
		ErrorDescription: "An unexpected error occurred while processing the customer request",
	}
)
