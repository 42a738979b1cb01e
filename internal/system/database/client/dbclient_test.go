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

package client

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/caravel-rentals/caravel/internal/system/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type DBClientTestSuite struct {
	suite.Suite
	mockDB   *sql.DB
	mock     sqlmock.Sqlmock
	dbClient DBClientInterface
}

func TestDBClientSuite(t *testing.T) {
	suite.Run(t, new(DBClientTestSuite))
}

func (suite *DBClientTestSuite) SetupTest() {
	var err error
	suite.mockDB, suite.mock, err = sqlmock.New()
	if err != nil {
		suite.T().Fatalf("Failed to create mock database: %v", err)
	}

	db := model.NewDB(suite.mockDB)
	suite.dbClient = NewDBClient(db, "mock")
}

func (suite *DBClientTestSuite) TearDownTest() {
	if suite.mock != nil {
		if err := suite.mock.ExpectationsWereMet(); err != nil {
			suite.T().Fatalf("There were unfulfilled expectations: %v", err)
		}
	}
}

func (suite *DBClientTestSuite) TestQuerySuccess() {
	testQuery := model.DBQuery{
		ID:    "test_query_success",
		Query: "SELECT VEHICLE_ID, VEHICLE_TYPE FROM VEHICLE WHERE LOCATION_ID = $1",
	}
	args := []interface{}{"loc1"}
	mockArgs := []driver.Value{"loc1"}

	columns := []string{"VEHICLE_ID", "VEHICLE_TYPE"}
	rows := sqlmock.NewRows(columns).
		AddRow("veh1", "suv").
		AddRow("veh2", "sedan")
	suite.mock.ExpectQuery("SELECT VEHICLE_ID, VEHICLE_TYPE FROM VEHICLE WHERE LOCATION_ID = \\$1").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 2)
	assert.Equal(suite.T(), "veh1", results[0]["vehicle_id"])
	assert.Equal(suite.T(), "suv", results[0]["vehicle_type"])
	assert.Equal(suite.T(), "veh2", results[1]["vehicle_id"])
	assert.Equal(suite.T(), "sedan", results[1]["vehicle_type"])
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

// Column names come back lowercased regardless of how the driver reports them.
func (suite *DBClientTestSuite) TestQueryNormalizesColumnNames() {
	testQuery := model.DBQuery{
		ID:    "test_query_columns",
		Query: "SELECT RESERVATION_ID, Status FROM RESERVATION",
	}

	rows := sqlmock.NewRows([]string{"RESERVATION_ID", "Status"}).
		AddRow("res1", "RESERVED")
	suite.mock.ExpectQuery("SELECT RESERVATION_ID, Status FROM RESERVATION").
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), results, 1)
	assert.Equal(suite.T(), "res1", results[0]["reservation_id"])
	assert.Equal(suite.T(), "RESERVED", results[0]["status"])
}

func (suite *DBClientTestSuite) TestQueryEmptyResults() {
	testQuery := model.DBQuery{
		ID:    "test_query_empty",
		Query: "SELECT VEHICLE_ID FROM VEHICLE WHERE LOCATION_ID = $1",
	}
	args := []interface{}{"ghost"}
	mockArgs := []driver.Value{"ghost"}

	rows := sqlmock.NewRows([]string{"VEHICLE_ID"})
	suite.mock.ExpectQuery("SELECT VEHICLE_ID FROM VEHICLE WHERE LOCATION_ID = \\$1").
		WithArgs(mockArgs...).
		WillReturnRows(rows)

	results, err := suite.dbClient.Query(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), results)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestQueryDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_query_error",
		Query: "SELECT VEHICLE_ID FROM NON_EXISTENT_TABLE",
	}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectQuery("SELECT VEHICLE_ID FROM NON_EXISTENT_TABLE").
		WillReturnError(expectedErr)

	results, err := suite.dbClient.Query(testQuery)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), results)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteSuccess() {
	testQuery := model.DBQuery{
		ID:    "test_execute_success",
		Query: "UPDATE RESERVATION SET STATUS = $1 WHERE RESERVATION_ID = $2",
	}
	args := []interface{}{"CANCELLED", "res1"}
	mockArgs := []driver.Value{"CANCELLED", "res1"}

	suite.mock.ExpectExec("UPDATE RESERVATION SET STATUS = \\$1 WHERE RESERVATION_ID = \\$2").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rowsAffected, err := suite.dbClient.Execute(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteZeroRowsAffected() {
	testQuery := model.DBQuery{
		ID:    "test_execute_zero",
		Query: "UPDATE RESERVATION SET STATUS = $1 WHERE RESERVATION_ID = $2",
	}
	args := []interface{}{"CANCELLED", "ghost"}
	mockArgs := []driver.Value{"CANCELLED", "ghost"}

	suite.mock.ExpectExec("UPDATE RESERVATION SET STATUS = \\$1 WHERE RESERVATION_ID = \\$2").
		WithArgs(mockArgs...).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rowsAffected, err := suite.dbClient.Execute(testQuery, args...)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteDatabaseError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_db_error",
		Query: "DELETE FROM NON_EXISTENT_TABLE WHERE ID = $1",
	}
	args := []interface{}{"res1"}
	mockArgs := []driver.Value{"res1"}

	expectedErr := errors.New("table not found")
	suite.mock.ExpectExec("DELETE FROM NON_EXISTENT_TABLE WHERE ID = \\$1").
		WithArgs(mockArgs...).
		WillReturnError(expectedErr)

	rowsAffected, err := suite.dbClient.Execute(testQuery, args...)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Equal(suite.T(), int64(0), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestExecuteRowsAffectedError() {
	testQuery := model.DBQuery{
		ID:    "test_execute_rows_error",
		Query: "INSERT INTO LOCATION (LOCATION_ID, NAME) VALUES ($1, $2)",
	}
	args := []interface{}{"loc1", "Airport North"}
	mockArgs := []driver.Value{"loc1", "Airport North"}

	result := sqlmock.NewErrorResult(errors.New("rows affected error"))
	suite.mock.ExpectExec("INSERT INTO LOCATION \\(LOCATION_ID, NAME\\) VALUES \\(\\$1, \\$2\\)").
		WithArgs(mockArgs...).
		WillReturnResult(result)

	rowsAffected, err := suite.dbClient.Execute(testQuery, args...)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "rows affected error")
	assert.Equal(suite.T(), int64(0), rowsAffected)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestBeginTxSuccess() {
	suite.mock.ExpectBegin()

	tx, err := suite.dbClient.BeginTx()

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), tx)
	assert.Implements(suite.T(), (*model.TxInterface)(nil), tx)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestBeginTxError() {
	expectedErr := errors.New("transaction error")
	suite.mock.ExpectBegin().WillReturnError(expectedErr)

	tx, err := suite.dbClient.BeginTx()

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), expectedErr, err)
	assert.Nil(suite.T(), tx)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}

func (suite *DBClientTestSuite) TestCloseSuccess() {
	suite.mock.ExpectClose()

	err := suite.dbClient.Close()

	assert.NoError(suite.T(), err)
	assert.NoError(suite.T(), suite.mock.ExpectationsWereMet())
}
