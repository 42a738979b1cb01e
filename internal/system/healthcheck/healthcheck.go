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

// Package healthcheck exposes the liveness, readiness and cache statistic
// endpoints.
package healthcheck

import (
	"encoding/json"
	"net/http"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

const loggerComponentName = "HealthCheckService"

// Status values reported by the health endpoints.
const (
	StatusUp   = "UP"
	StatusDown = "DOWN"
)

// ServiceStatus is the health of one dependency.
type ServiceStatus struct {
	ServiceName string `json:"service_name"`
	Status      string `json:"status"`
}

// HealthStatus is the aggregate readiness report.
type HealthStatus struct {
	Status        string          `json:"status"`
	ServiceStatus []ServiceStatus `json:"service_status"`
}

// HealthCheckHandler serves the health endpoints.
type HealthCheckHandler struct {
	dbProvider    provider.DBProviderInterface
	cacheProvider *cache.Provider
	databases     []string
}

// NewHealthCheckHandler creates a health check handler over the database and
// cache providers.
func NewHealthCheckHandler(cacheProvider *cache.Provider) *HealthCheckHandler {
	return &HealthCheckHandler{
		dbProvider:    provider.GetDBProvider(),
		cacheProvider: cacheProvider,
		databases:     []string{"rental", "runtime"},
	}
}

// HandleLivenessRequest handles GET /health/liveness requests.
func (hh *HealthCheckHandler) HandleLivenessRequest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": StatusUp})
}

// HandleReadinessRequest handles GET /health/readiness requests. The server
// is ready when every configured datasource answers a ping.
func (hh *HealthCheckHandler) HandleReadinessRequest(w http.ResponseWriter, r *http.Request) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	report := HealthStatus{Status: StatusUp, ServiceStatus: []ServiceStatus{}}
	for _, name := range hh.databases {
		status := StatusUp
		dbClient, err := hh.dbProvider.GetDBClient(name)
		if err != nil || dbClient.Ping() != nil {
			logger.Warn("Datasource failed readiness ping", log.String("datasource", name))
			status = StatusDown
			report.Status = StatusDown
		}
		report.ServiceStatus = append(report.ServiceStatus, ServiceStatus{
			ServiceName: name + " database",
			Status:      status,
		})
	}

	statusCode := http.StatusOK
	if report.Status == StatusDown {
		statusCode = http.StatusServiceUnavailable
	}
	writeJSON(w, statusCode, report)
}

// HandleCacheStatsRequest handles GET /health/cache requests with the hit and
// eviction counters of every registered cache.
func (hh *HealthCheckHandler) HandleCacheStatsRequest(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, hh.cacheProvider.Stats())
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.GetLogger().Error("Failed to encode health response", log.Error(err))
	}
}

// Initialize registers the health endpoints.
func Initialize(mux *http.ServeMux, cacheProvider *cache.Provider) {
	handler := NewHealthCheckHandler(cacheProvider)
	mux.HandleFunc("GET /health/liveness", handler.HandleLivenessRequest)
	mux.HandleFunc("GET /health/readiness", handler.HandleReadinessRequest)
	mux.HandleFunc("GET /health/cache", handler.HandleCacheStatsRequest)
}
