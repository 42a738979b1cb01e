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

// defaultMaxRangeDays caps the length of a bookable date range when the
// deployment configuration does not set one.
const defaultMaxRangeDays = 365

// Query parameter names accepted by the availability endpoint.
const (
	queryParamLocation    = "location"
	queryParamStartDate   = "start_date"
	queryParamEndDate     = "end_date"
	queryParamVehicleType = "vehicle_type"
	queryParamMinRate     = "min_daily_rate"
	queryParamMaxRate     = "max_daily_rate"
)
