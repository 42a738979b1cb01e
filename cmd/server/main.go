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

// Command server runs the Caravel rental booking server.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/database/provider"
	"github.com/caravel-rentals/caravel/internal/system/log"
	"github.com/caravel-rentals/caravel/internal/system/managers"
)

func main() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Server"))

	caravelHome := flag.String("caravelHome", ".", "Path to the Caravel home directory")
	flag.Parse()

	cfg, err := config.LoadConfig(filepath.Join(*caravelHome, "repository", "conf",
		"deployment.yaml"))
	if err != nil {
		logger.Fatal("Failed to load configuration", log.Error(err))
	}
	if err := config.InitializeCaravelRuntime(*caravelHome, cfg); err != nil {
		logger.Fatal("Failed to initialize runtime", log.Error(err))
	}

	var backing cache.BackingStore
	if cfg.Cache.Persistence.Enabled {
		backing = cache.NewDBBackingStore(provider.GetDBProvider())
	}
	cacheProvider := cache.NewProvider(cfg.Cache, backing)
	defer cacheProvider.Close()

	mux := http.NewServeMux()
	managers.RegisterServices(mux, cacheProvider)

	address := fmt.Sprintf("%s:%d", cfg.Server.Hostname, cfg.Server.Port)
	server := &http.Server{
		Addr:    address,
		Handler: log.AccessLogHandler(log.GetLogger(), mux),
	}

	if cfg.Server.HTTPOnly {
		logger.Info("Caravel server started (HTTP)...", log.String("address", address))
		if err := server.ListenAndServe(); err != nil {
			logger.Fatal("Server stopped", log.Error(err))
		}
		return
	}

	certFile := filepath.Join(*caravelHome, cfg.Security.CertFile)
	keyFile := filepath.Join(*caravelHome, cfg.Security.KeyFile)
	logger.Info("Caravel server started (HTTPS)...", log.String("address", address))
	if err := server.ListenAndServeTLS(certFile, keyFile); err != nil {
		logger.Fatal("Server stopped", log.Error(err))
	}
}
