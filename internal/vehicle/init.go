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

import (
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/middleware"
)

// Initialize registers the vehicle routes and returns the vehicle service.
func Initialize(mux *http.ServeMux) VehicleServiceInterface {
	service := NewVehicleService()
	handler := NewVehicleHandler(service)

	opts := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type"}
	mux.HandleFunc(middleware.WithCORS("GET /vehicles", handler.HandleVehicleListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /vehicles/{id}", handler.HandleVehicleGetRequest, opts))

	return service
}
