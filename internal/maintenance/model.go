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

import "time"

// ServiceStatus is the lifecycle state of a service window.
type ServiceStatus string

// Service window statuses.
const (
	ServiceStatusScheduled ServiceStatus = "SCHEDULED"
	ServiceStatusCompleted ServiceStatus = "COMPLETED"
	ServiceStatusCancelled ServiceStatus = "CANCELLED"
)

// ServiceWindow represents a maintenance slot that takes a vehicle out of the
// fleet for the day it is scheduled on.
type ServiceWindow struct {
	ID            string        `json:"id"`
	VehicleID     string        `json:"vehicle_id"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	Status        ServiceStatus `json:"status"`
	Notes         string        `json:"notes,omitempty"`
}

// ServiceWindowRequest is the payload for scheduling a service window.
type ServiceWindowRequest struct {
	VehicleID     string `json:"vehicle_id"`
	ScheduledDate string `json:"scheduled_date"`
	Notes         string `json:"notes,omitempty"`
}

// ServiceWindowStatusRequest is the payload for updating a service window.
type ServiceWindowStatusRequest struct {
	Status ServiceStatus `json:"status"`
}
