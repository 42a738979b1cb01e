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

import "github.com/caravel-rentals/caravel/internal/system/database/model"

var (
	// queryCreateServiceWindow inserts a new service window.
	queryCreateServiceWindow = model.DBQuery{
		ID: "MNQ-SVC-01",
		Query: "INSERT INTO SERVICE_WINDOW (SERVICE_ID, VEHICLE_ID, SCHEDULED_DATE, STATUS, " +
			"NOTES) VALUES ($1, $2, $3, $4, $5)",
	}

	// queryGetServiceWindowByID retrieves a service window by its id.
	queryGetServiceWindowByID = model.DBQuery{
		ID: "MNQ-SVC-02",
		Query: "SELECT SERVICE_ID, VEHICLE_ID, SCHEDULED_DATE, STATUS, NOTES " +
			"FROM SERVICE_WINDOW WHERE SERVICE_ID = $1",
	}

	// queryUpdateServiceWindowStatus updates the status of a service window.
	queryUpdateServiceWindowStatus = model.DBQuery{
		ID:    "MNQ-SVC-03",
		Query: "UPDATE SERVICE_WINDOW SET STATUS = $1 WHERE SERVICE_ID = $2",
	}

	// queryGetVehicleLocation resolves the home location of a vehicle.
	queryGetVehicleLocation = model.DBQuery{
		ID:    "MNQ-SVC-04",
		Query: "SELECT LOCATION_ID FROM VEHICLE WHERE VEHICLE_ID = $1",
	}
)

// Base query for scheduled service lookups. The vehicle id list is expanded
// by the store.
const queryGetScheduledServicesBase = "SELECT SERVICE_ID, VEHICLE_ID, SCHEDULED_DATE, STATUS, " +
	"NOTES FROM SERVICE_WINDOW WHERE STATUS = $1 AND SCHEDULED_DATE >= $2 AND " +
	"SCHEDULED_DATE < $3 AND VEHICLE_ID IN (%s)"

// Query id for scheduled service lookups.
const queryGetScheduledServicesID = "MNQ-SVC-05"
