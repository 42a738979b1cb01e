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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type RuntimeConfigTestSuite struct {
	suite.Suite
}

func TestRuntimeConfigSuite(t *testing.T) {
	suite.Run(t, new(RuntimeConfigTestSuite))
}

func (suite *RuntimeConfigTestSuite) BeforeTest(suiteName, testName string) {
	ResetCaravelRuntime()
}

func (suite *RuntimeConfigTestSuite) TestInitializeCaravelRuntime() {
	config := &Config{
		Server: ServerConfig{
			Hostname: "testhost",
			Port:     9000,
		},
		Booking: BookingConfig{
			MaxRangeDays: 90,
		},
	}

	err := InitializeCaravelRuntime("/test/caravel/home", config)

	assert.NoError(suite.T(), err)

	runtime := GetCaravelRuntime()
	assert.NotNil(suite.T(), runtime)
	assert.Equal(suite.T(), "/test/caravel/home", runtime.CaravelHome)
	assert.Equal(suite.T(), config.Server.Hostname, runtime.Config.Server.Hostname)
	assert.Equal(suite.T(), config.Server.Port, runtime.Config.Server.Port)
	assert.Equal(suite.T(), config.Booking.MaxRangeDays, runtime.Config.Booking.MaxRangeDays)
}

func (suite *RuntimeConfigTestSuite) TestInitializeCaravelRuntimeOnlyOnce() {
	firstConfig := &Config{
		Server: ServerConfig{
			Hostname: "firsthost",
			Port:     8000,
		},
	}

	err := InitializeCaravelRuntime("/first/path", firstConfig)
	assert.NoError(suite.T(), err)

	secondConfig := &Config{
		Server: ServerConfig{
			Hostname: "secondhost",
			Port:     9000,
		},
	}

	err = InitializeCaravelRuntime("/second/path", secondConfig)
	assert.NoError(suite.T(), err)

	// The first initialization wins.
	runtime := GetCaravelRuntime()
	assert.Equal(suite.T(), "/first/path", runtime.CaravelHome)
	assert.Equal(suite.T(), "firsthost", runtime.Config.Server.Hostname)
}

func (suite *RuntimeConfigTestSuite) TestGetCaravelRuntimePanicsWhenUninitialized() {
	assert.Panics(suite.T(), func() {
		GetCaravelRuntime()
	})
}
