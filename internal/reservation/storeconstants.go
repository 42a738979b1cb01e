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

import "github.com/caravel-rentals/caravel/internal/system/database/model"

const reservationColumns = "RESERVATION_ID, VEHICLE_ID, CUSTOMER_ID, LOCATION_ID, START_DATE, " +
	"END_DATE, STATUS, DAILY_RATE, TOTAL_COST"

var (
	// queryCreateReservation inserts a new reservation.
	queryCreateReservation = model.DBQuery{
		ID: "RSQ-RES-01",
		Query: "INSERT INTO RESERVATION (" + reservationColumns + ") " +
			"VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)",
	}

	// queryGetReservationByID retrieves a reservation by its id.
	queryGetReservationByID = model.DBQuery{
		ID:    "RSQ-RES-02",
		Query: "SELECT " + reservationColumns + " FROM RESERVATION WHERE RESERVATION_ID = $1",
	}

	// queryUpdateReservation rewrites the mutable fields of a reservation.
	queryUpdateReservation = model.DBQuery{
		ID: "RSQ-RES-03",
		Query: "UPDATE RESERVATION SET VEHICLE_ID = $1, LOCATION_ID = $2, START_DATE = $3, " +
			"END_DATE = $4, STATUS = $5, DAILY_RATE = $6, TOTAL_COST = $7 " +
			"WHERE RESERVATION_ID = $8",
	}

	// queryUpdateReservationStatus updates only the status of a reservation.
	queryUpdateReservationStatus = model.DBQuery{
		ID:    "RSQ-RES-04",
		Query: "UPDATE RESERVATION SET STATUS = $1 WHERE RESERVATION_ID = $2",
	}

	// queryGetReservationsByCustomer retrieves a customer's reservations,
	// most recent start date first.
	queryGetReservationsByCustomer = model.DBQuery{
		ID: "RSQ-RES-05",
		Query: "SELECT " + reservationColumns + " FROM RESERVATION WHERE CUSTOMER_ID = $1 " +
			"ORDER BY START_DATE DESC",
	}

	// queryGetActiveReservationsByVehicle retrieves the blocking reservations
	// for one vehicle.
	queryGetActiveReservationsByVehicle = model.DBQuery{
		ID: "RSQ-RES-06",
		Query: "SELECT " + reservationColumns + " FROM RESERVATION WHERE VEHICLE_ID = $1 " +
			"AND STATUS NOT IN ('CANCELLED', 'COMPLETED')",
	}
)

// Base query for blocking reservations across a vehicle list. The id list is
// expanded by the store.
const queryGetActiveReservationsBase = "SELECT " + reservationColumns + " FROM RESERVATION " +
	"WHERE STATUS NOT IN ('CANCELLED', 'COMPLETED') AND VEHICLE_ID IN (%s)"

// Query id for blocking reservation lookups.
const queryGetActiveReservationsID = "RSQ-RES-07"
