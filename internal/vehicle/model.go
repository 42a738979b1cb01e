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

// Vehicle represents a rentable vehicle in the fleet.
type Vehicle struct {
	ID             string  `json:"id"`
	HomeLocationID string  `json:"home_location_id"`
	Type           string  `json:"type"`
	Make           string  `json:"make"`
	Model          string  `json:"model"`
	DailyRate      float64 `json:"daily_rate"`
	Available      bool    `json:"available"`
}

// VehicleFilter narrows a fleet listing by type and daily rate bounds.
type VehicleFilter struct {
	LocationID  string
	VehicleType string
	MinRate     *float64
	MaxRate     *float64
}
