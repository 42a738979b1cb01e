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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const testDeploymentYAML = `
server:
  hostname: "localhost"
  port: 8090
  http_only: true

security:
  cert_file: "repository/resources/security/server.cert"
  key_file: "repository/resources/security/server.key"

database:
  rental:
    type: "postgres"
    hostname: "localhost"
    port: 5432
    name: "rentaldb"
    username: "caravel"
    sslmode: "disable"
  runtime:
    type: "sqlite"
    path: "repository/database/runtimedb.db"

cache:
  disabled: false
  type: "inmemory"
  cleanup_interval: 60
  persistence:
    enabled: true
  properties:
    - name: "AvailabilityCache"
      size: 1000
      ttl: 300
      dedup: true
    - name: "LocationCache"
      disabled: true
      size: 200
      ttl: 3600

booking:
  max_range_days: 180
`

type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (suite *ConfigTestSuite) SetupTest() {
	suite.tempDir = suite.T().TempDir()
}

func (suite *ConfigTestSuite) writeConfigFile(filename, content string) string {
	path := filepath.Join(suite.tempDir, filename)
	err := os.WriteFile(path, []byte(content), 0600)
	if err != nil {
		suite.T().Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func (suite *ConfigTestSuite) TestLoadConfigValid() {
	configPath := suite.writeConfigFile("deployment.yaml", testDeploymentYAML)
	config, err := LoadConfig(configPath)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), config)

	// Verify server config
	assert.Equal(suite.T(), "localhost", config.Server.Hostname)
	assert.Equal(suite.T(), 8090, config.Server.Port)
	assert.True(suite.T(), config.Server.HTTPOnly)

	// Verify database config
	assert.Equal(suite.T(), "postgres", config.Database.Rental.Type)
	assert.Equal(suite.T(), "rentaldb", config.Database.Rental.Name)
	assert.Equal(suite.T(), "sqlite", config.Database.Runtime.Type)
	assert.Equal(suite.T(), "repository/database/runtimedb.db", config.Database.Runtime.Path)

	// Verify cache config
	assert.False(suite.T(), config.Cache.Disabled)
	assert.Equal(suite.T(), 60, config.Cache.CleanupInterval)
	assert.True(suite.T(), config.Cache.Persistence.Enabled)
	assert.Len(suite.T(), config.Cache.Properties, 2)
	assert.Equal(suite.T(), "AvailabilityCache", config.Cache.Properties[0].Name)
	assert.Equal(suite.T(), 1000, config.Cache.Properties[0].Size)
	assert.Equal(suite.T(), 300, config.Cache.Properties[0].TTL)
	assert.True(suite.T(), config.Cache.Properties[0].Dedup)
	assert.True(suite.T(), config.Cache.Properties[1].Disabled)

	// Verify booking config
	assert.Equal(suite.T(), 180, config.Booking.MaxRangeDays)
}

func (suite *ConfigTestSuite) TestLoadConfigFileNotFound() {
	configPath := filepath.Join(suite.tempDir, "non_existent_config.yaml")
	config, err := LoadConfig(configPath)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
	assert.Contains(suite.T(), err.Error(), "no such file or directory")
}

func (suite *ConfigTestSuite) TestLoadConfigInvalidYAML() {
	configPath := suite.writeConfigFile("invalid_deployment.yaml",
		"server:\n  hostname: [unterminated")

	config, err := LoadConfig(configPath)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), config)
}
