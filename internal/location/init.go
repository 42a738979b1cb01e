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

import (
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/middleware"
)

// Initialize registers the location routes and returns the location service.
func Initialize(mux *http.ServeMux, cacheProvider *cache.Provider) LocationServiceInterface {
	service := NewLocationService(cacheProvider)
	handler := NewLocationHandler(service)

	opts := middleware.CORSOptions{AllowedMethods: "GET", AllowedHeaders: "Content-Type"}
	mux.HandleFunc(middleware.WithCORS("GET /locations", handler.HandleLocationListRequest, opts))
	mux.HandleFunc(middleware.WithCORS("GET /locations/{id}", handler.HandleLocationGetRequest, opts))

	return service
}
