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

import "github.com/caravel-rentals/caravel/internal/system/database/model"

var (
	// queryCreateCustomer inserts a new customer.
	queryCreateCustomer = model.DBQuery{
		ID: "CSQ-CUS-01",
		Query: "INSERT INTO CUSTOMER (CUSTOMER_ID, NAME, EMAIL, PHONE, LICENSE_NUMBER) " +
			"VALUES ($1, $2, $3, $4, $5)",
	}

	// queryGetCustomerByID retrieves a customer by its id.
	queryGetCustomerByID = model.DBQuery{
		ID: "CSQ-CUS-02",
		Query: "SELECT CUSTOMER_ID, NAME, EMAIL, PHONE, LICENSE_NUMBER FROM CUSTOMER " +
			"WHERE CUSTOMER_ID = $1",
	}

	// queryCheckCustomerExists checks whether a customer exists.
	queryCheckCustomerExists = model.DBQuery{
		ID:    "CSQ-CUS-03",
		Query: "SELECT COUNT(*) AS COUNT FROM CUSTOMER WHERE CUSTOMER_ID = $1",
	}

	// queryCheckEmailExists checks whether a customer is registered with the email.
	queryCheckEmailExists = model.DBQuery{
		ID:    "CSQ-CUS-04",
		Query: "SELECT COUNT(*) AS COUNT FROM CUSTOMER WHERE EMAIL = $1",
	}
)
