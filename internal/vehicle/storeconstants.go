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

import "github.com/caravel-rentals/caravel/internal/system/database/model"

var (
	// queryGetVehicleByID retrieves a vehicle by its id.
	queryGetVehicleByID = model.DBQuery{
		ID: "VHQ-VEH-01",
		Query: "SELECT VEHICLE_ID, LOCATION_ID, TYPE, MAKE, MODEL, DAILY_RATE, AVAILABLE " +
			"FROM VEHICLE WHERE VEHICLE_ID = $1",
	}
)

// Base query for filtered fleet listings. Filter clauses are appended by the
// store based on the populated filter fields.
const queryGetVehiclesBase = "SELECT VEHICLE_ID, LOCATION_ID, TYPE, MAKE, MODEL, DAILY_RATE, " +
	"AVAILABLE FROM VEHICLE WHERE LOCATION_ID = $1"

// Query id for filtered fleet listings.
const queryGetVehiclesID = "VHQ-VEH-02"
