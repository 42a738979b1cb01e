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

import "github.com/caravel-rentals/caravel/internal/system/database/model"

var (
	// queryGetLocationList retrieves all rental locations.
	queryGetLocationList = model.DBQuery{
		ID:    "LOQ-LOC-01",
		Query: "SELECT LOCATION_ID, NAME, CITY, ADDRESS FROM LOCATION ORDER BY NAME",
	}

	// queryGetLocationByID retrieves a rental location by its id.
	queryGetLocationByID = model.DBQuery{
		ID:    "LOQ-LOC-02",
		Query: "SELECT LOCATION_ID, NAME, CITY, ADDRESS FROM LOCATION WHERE LOCATION_ID = $1",
	}

	// queryCheckLocationExists checks whether a rental location exists.
	queryCheckLocationExists = model.DBQuery{
		ID:    "LOQ-LOC-03",
		Query: "SELECT COUNT(*) AS COUNT FROM LOCATION WHERE LOCATION_ID = $1",
	}
)
