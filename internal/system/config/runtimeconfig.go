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

package config

import "sync"

// CaravelRuntime holds the runtime configuration for the Caravel server.
type CaravelRuntime struct {
	CaravelHome string `yaml:"caravel_home"`
	Config      Config `yaml:"config"`
}

var (
	runtimeConfig *CaravelRuntime
	once          sync.Once
)

// InitializeCaravelRuntime initializes the CaravelRuntime configuration.
func InitializeCaravelRuntime(caravelHome string, config *Config) error {
	once.Do(func() {
		runtimeConfig = &CaravelRuntime{
			CaravelHome: caravelHome,
			Config:      *config,
		}
	})

	return nil
}

// GetCaravelRuntime returns the CaravelRuntime configuration.
func GetCaravelRuntime() *CaravelRuntime {
	if runtimeConfig == nil {
		panic("CaravelRuntime is not initialized")
	}
	return runtimeConfig
}

// ResetCaravelRuntime resets the CaravelRuntime.
// This should only be used in tests to reset the singleton state.
func ResetCaravelRuntime() {
	runtimeConfig = nil
	once = sync.Once{}
}
