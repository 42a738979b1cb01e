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

package reservation

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/caravel-rentals/caravel/internal/availability"
	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/utils"
	"github.com/caravel-rentals/caravel/internal/vehicle"
)

type mockReservationStore struct {
	reservations map[string]Reservation
	storeErr     error
}

func newMockReservationStore() *mockReservationStore {
	return &mockReservationStore{reservations: make(map[string]Reservation)}
}

func (m *mockReservationStore) CreateReservation(reservation Reservation) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationStore) GetReservationByID(reservationID string) (*Reservation, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	if reservation, ok := m.reservations[reservationID]; ok {
		return &reservation, nil
	}
	return nil, nil
}

func (m *mockReservationStore) UpdateReservation(reservation Reservation) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	m.reservations[reservation.ID] = reservation
	return nil
}

func (m *mockReservationStore) UpdateReservationStatus(reservationID string,
	status ReservationStatus) error {
	if m.storeErr != nil {
		return m.storeErr
	}
	reservation := m.reservations[reservationID]
	reservation.Status = status
	m.reservations[reservationID] = reservation
	return nil
}

func (m *mockReservationStore) GetReservationsByCustomer(customerID string) ([]Reservation, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	matches := []Reservation{}
	for _, reservation := range m.reservations {
		if reservation.CustomerID == customerID {
			matches = append(matches, reservation)
		}
	}
	return matches, nil
}

func (m *mockReservationStore) GetActiveReservationsByVehicle(vehicleID string) (
	[]Reservation, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	matches := []Reservation{}
	for _, reservation := range m.reservations {
		if reservation.VehicleID == vehicleID && blocksVehicle(reservation.Status) {
			matches = append(matches, reservation)
		}
	}
	return matches, nil
}

func (m *mockReservationStore) GetActiveReservations(vehicleIDs []string) ([]Reservation, error) {
	if m.storeErr != nil {
		return nil, m.storeErr
	}
	wanted := make(map[string]bool, len(vehicleIDs))
	for _, id := range vehicleIDs {
		wanted[id] = true
	}
	matches := []Reservation{}
	for _, reservation := range m.reservations {
		if wanted[reservation.VehicleID] && blocksVehicle(reservation.Status) {
			matches = append(matches, reservation)
		}
	}
	return matches, nil
}

type mockCustomerDirectory struct {
	existing  map[string]bool
	lookupErr error
	calls     int
}

func (m *mockCustomerDirectory) CustomerExists(customerID string) (bool, error) {
	m.calls++
	if m.lookupErr != nil {
		return false, m.lookupErr
	}
	return m.existing[customerID], nil
}

type mockVehicleDirectory struct {
	vehicles map[string]*vehicle.Vehicle
}

func (m *mockVehicleDirectory) GetVehicle(vehicleID string) (
	*vehicle.Vehicle, *serviceerror.ServiceError) {
	if veh, ok := m.vehicles[vehicleID]; ok {
		return veh, nil
	}
	return nil, &serviceerror.ServiceError{Type: serviceerror.ClientErrorType}
}

type mockServiceSource struct {
	windows []availability.ServiceWindow
}

func (m *mockServiceSource) FetchScheduledServices(vehicleIDs []string,
	startDate, endDate time.Time) ([]availability.ServiceWindow, error) {
	return m.windows, nil
}

type ReservationServiceTestSuite struct {
	suite.Suite
	store             *mockReservationStore
	customers         *mockCustomerDirectory
	vehicles          *mockVehicleDirectory
	services          *mockServiceSource
	cacheProvider     *cache.Provider
	availabilityCache cache.CacheInterface[*availability.AvailabilityResult]
	historyCache      cache.CacheInterface[[]Reservation]
	service           *reservationService
	base              time.Time
}

func TestReservationServiceSuite(t *testing.T) {
	suite.Run(t, new(ReservationServiceTestSuite))
}

func (s *ReservationServiceTestSuite) SetupTest() {
	s.base = utils.Today().AddDate(0, 0, 30)
	s.store = newMockReservationStore()
	s.customers = &mockCustomerDirectory{existing: map[string]bool{"cust1": true}}
	s.vehicles = &mockVehicleDirectory{vehicles: map[string]*vehicle.Vehicle{
		"veh1": {ID: "veh1", HomeLocationID: "loc1", Type: "suv", DailyRate: 80, Available: true},
		"veh2": {ID: "veh2", HomeLocationID: "loc2", Type: "sedan", DailyRate: 50, Available: true},
	}}
	s.services = &mockServiceSource{}

	s.cacheProvider = cache.NewProvider(config.CacheConfig{
		Properties: []config.CacheProperty{
			{Name: cache.AvailabilityCacheName, Size: 100, TTL: 300},
			{Name: cache.CustomerHistoryCacheName, Size: 100, TTL: 300},
		},
	}, nil)
	s.availabilityCache = cache.GetCache[*availability.AvailabilityResult](s.cacheProvider,
		cache.AvailabilityCacheName)
	s.historyCache = cache.GetCache[[]Reservation](s.cacheProvider,
		cache.CustomerHistoryCacheName)

	s.service = &reservationService{
		store:        s.store,
		customers:    s.customers,
		vehicles:     s.vehicles,
		services:     s.services,
		invalidator:  availability.NewInvalidator(s.availabilityCache, s.historyCache),
		historyCache: s.historyCache,
		maxRangeDays: 365,
	}
}

func (s *ReservationServiceTestSuite) TearDownTest() {
	s.cacheProvider.Close()
}

func (s *ReservationServiceTestSuite) day(n int) time.Time {
	return s.base.AddDate(0, 0, n)
}

func (s *ReservationServiceTestSuite) request(startOffset, endOffset int) *ReservationRequest {
	return &ReservationRequest{
		CustomerID: "cust1",
		VehicleID:  "veh1",
		StartDate:  utils.FormatDate(s.day(startOffset)),
		EndDate:    utils.FormatDate(s.day(endOffset)),
	}
}

// seedReservation stores an existing booking directly, bypassing the service.
func (s *ReservationServiceTestSuite) seedReservation(id string, vehicleID string,
	startOffset, endOffset int, status ReservationStatus) {
	s.store.reservations[id] = Reservation{
		ID:         id,
		VehicleID:  vehicleID,
		CustomerID: "cust1",
		LocationID: "loc1",
		StartDate:  s.day(startOffset),
		EndDate:    s.day(endOffset),
		Status:     status,
		DailyRate:  80,
	}
}

func (s *ReservationServiceTestSuite) TestCreateReservation() {
	reservation, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().Nil(svcErr)

	s.NotEmpty(reservation.ID)
	s.Equal("veh1", reservation.VehicleID)
	s.Equal("loc1", reservation.LocationID)
	s.Equal(StatusReserved, reservation.Status)
	s.InDelta(240.0, reservation.TotalCost, 0.001)
	s.Len(s.store.reservations, 1)
}

func (s *ReservationServiceTestSuite) TestCreateReservationEvictsCaches() {
	query := &availability.AvailabilityQuery{
		LocationID: "loc1",
		StartDate:  s.day(5),
		EndDate:    s.day(8),
	}
	s.availabilityCache.Set(query.CacheKey(), &availability.AvailabilityResult{TotalCount: 1})
	s.historyCache.Set(cache.CustomerHistoryKey("cust1"), []Reservation{})

	_, svcErr := s.service.CreateReservation(s.request(10, 12))
	s.Require().Nil(svcErr)

	_, ok := s.availabilityCache.Get(query.CacheKey())
	s.False(ok)
	_, ok = s.historyCache.Get(cache.CustomerHistoryKey("cust1"))
	s.False(ok)
}

func (s *ReservationServiceTestSuite) TestCreateReservationConflictOnOverlap() {
	s.seedReservation("res1", "veh1", 4, 6, StatusReserved)

	_, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationConflict.Code, svcErr.Code)
	s.Len(s.store.reservations, 1)
}

func (s *ReservationServiceTestSuite) TestCreateReservationBackToBackAllowed() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	reservation, svcErr := s.service.CreateReservation(s.request(8, 10))
	s.Require().Nil(svcErr)
	s.Equal(StatusReserved, reservation.Status)
}

func (s *ReservationServiceTestSuite) TestCreateReservationCancelledDoesNotConflict() {
	s.seedReservation("res1", "veh1", 5, 8, StatusCancelled)

	_, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().Nil(svcErr)
}

func (s *ReservationServiceTestSuite) TestCreateReservationServiceWindowConflict() {
	s.services.windows = []availability.ServiceWindow{{
		ServiceID:     "svc1",
		VehicleID:     "veh1",
		ScheduledDate: s.day(6),
		Status:        "SCHEDULED",
	}}

	_, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationConflict.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestCreateReservationUnknownCustomer() {
	request := s.request(5, 8)
	request.CustomerID = "ghost"

	_, svcErr := s.service.CreateReservation(request)
	s.Require().NotNil(svcErr)
	s.Equal(ErrorCustomerNotFound.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestCreateReservationUnknownVehicle() {
	request := s.request(5, 8)
	request.VehicleID = "ghost"

	_, svcErr := s.service.CreateReservation(request)
	s.Require().NotNil(svcErr)
	s.Equal(ErrorVehicleNotFound.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestCreateReservationVehicleOutOfFleet() {
	s.vehicles.vehicles["veh1"].Available = false

	_, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().NotNil(svcErr)
	s.Equal(ErrorVehicleUnavailable.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestCreateReservationCollectsAllViolations() {
	request := &ReservationRequest{
		VehicleID: "veh1",
		StartDate: utils.FormatDate(s.day(8)),
		EndDate:   utils.FormatDate(s.day(5)),
	}

	_, svcErr := s.service.CreateReservation(request)
	s.Require().NotNil(svcErr)
	s.Equal(ErrorInvalidBookingRequest.Code, svcErr.Code)
	s.Len(svcErr.Details, 2)
	s.Contains(svcErr.Details, "customer_id is required")
	s.Contains(svcErr.Details, "end_date must be after start_date")
}

func (s *ReservationServiceTestSuite) TestCreateReservationRejectsPastStart() {
	request := s.request(5, 8)
	request.StartDate = utils.FormatDate(utils.Today().AddDate(0, 0, -1))

	_, svcErr := s.service.CreateReservation(request)
	s.Require().NotNil(svcErr)
	s.Contains(svcErr.Details, "start_date must not be in the past")
}

func (s *ReservationServiceTestSuite) TestModifyReservation() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	updated, svcErr := s.service.ModifyReservation("res1", &ReservationUpdateRequest{
		StartDate: utils.FormatDate(s.day(10)),
		EndDate:   utils.FormatDate(s.day(14)),
	})
	s.Require().Nil(svcErr)
	s.Equal(StatusModified, updated.Status)
	s.Equal(s.day(10), utils.TruncateToDay(updated.StartDate))
	s.InDelta(320.0, updated.TotalCost, 0.001)
}

func (s *ReservationServiceTestSuite) TestModifyReservationExcludesItself() {
	// Shifting a booking by one day overlaps its own current interval, which
	// must not count as a conflict.
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	_, svcErr := s.service.ModifyReservation("res1", &ReservationUpdateRequest{
		StartDate: utils.FormatDate(s.day(6)),
		EndDate:   utils.FormatDate(s.day(9)),
	})
	s.Require().Nil(svcErr)
}

func (s *ReservationServiceTestSuite) TestModifyReservationConflictWithOtherBooking() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)
	s.seedReservation("res2", "veh1", 10, 12, StatusReserved)

	_, svcErr := s.service.ModifyReservation("res1", &ReservationUpdateRequest{
		StartDate: utils.FormatDate(s.day(9)),
		EndDate:   utils.FormatDate(s.day(11)),
	})
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationConflict.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestModifyReservationSwitchesVehicle() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	updated, svcErr := s.service.ModifyReservation("res1", &ReservationUpdateRequest{
		VehicleID: "veh2",
	})
	s.Require().Nil(svcErr)
	s.Equal("veh2", updated.VehicleID)
	s.Equal("loc2", updated.LocationID)
	s.InDelta(50.0, updated.DailyRate, 0.001)
}

func (s *ReservationServiceTestSuite) TestModifyClosedReservation() {
	s.seedReservation("res1", "veh1", 5, 8, StatusCompleted)

	_, svcErr := s.service.ModifyReservation("res1", &ReservationUpdateRequest{
		EndDate: utils.FormatDate(s.day(9)),
	})
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationClosed.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestModifyUnknownReservation() {
	_, svcErr := s.service.ModifyReservation("ghost", &ReservationUpdateRequest{})
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationNotFound.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestCancelReservation() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	cancelled, svcErr := s.service.CancelReservation("res1")
	s.Require().Nil(svcErr)
	s.Equal(StatusCancelled, cancelled.Status)
	s.Equal(StatusCancelled, s.store.reservations["res1"].Status)
}

func (s *ReservationServiceTestSuite) TestCancelCancelledReservationIsIdempotent() {
	s.seedReservation("res1", "veh1", 5, 8, StatusCancelled)
	s.historyCache.Set(cache.CustomerHistoryKey("cust1"), []Reservation{})

	cancelled, svcErr := s.service.CancelReservation("res1")
	s.Require().Nil(svcErr)
	s.Equal(StatusCancelled, cancelled.Status)

	// The no-op path must not evict anything.
	_, ok := s.historyCache.Get(cache.CustomerHistoryKey("cust1"))
	s.True(ok)
}

func (s *ReservationServiceTestSuite) TestCancelCompletedReservation() {
	s.seedReservation("res1", "veh1", 5, 8, StatusCompleted)

	_, svcErr := s.service.CancelReservation("res1")
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationClosed.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestGetReservation() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	reservation, svcErr := s.service.GetReservation("res1")
	s.Require().Nil(svcErr)
	s.Equal("res1", reservation.ID)

	_, svcErr = s.service.GetReservation("ghost")
	s.Require().NotNil(svcErr)
	s.Equal(ErrorReservationNotFound.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestGetCustomerReservationsCached() {
	s.seedReservation("res1", "veh1", 5, 8, StatusReserved)

	for i := 0; i < 3; i++ {
		history, svcErr := s.service.GetCustomerReservations("cust1")
		s.Require().Nil(svcErr)
		s.Len(history, 1)
	}
	s.Equal(1, s.customers.calls)
}

func (s *ReservationServiceTestSuite) TestGetCustomerReservationsUnknownCustomer() {
	_, svcErr := s.service.GetCustomerReservations("ghost")
	s.Require().NotNil(svcErr)
	s.Equal(ErrorCustomerNotFound.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestHistoryRefreshedAfterCreate() {
	history, svcErr := s.service.GetCustomerReservations("cust1")
	s.Require().Nil(svcErr)
	s.Empty(history)

	_, svcErr = s.service.CreateReservation(s.request(5, 8))
	s.Require().Nil(svcErr)

	history, svcErr = s.service.GetCustomerReservations("cust1")
	s.Require().Nil(svcErr)
	s.Len(history, 1)
}

func (s *ReservationServiceTestSuite) TestStoreFailureSurfacesAsServerError() {
	s.store.storeErr = errors.New("connection refused")

	_, svcErr := s.service.CreateReservation(s.request(5, 8))
	s.Require().NotNil(svcErr)
	s.Equal(ErrorInternalServerError.Code, svcErr.Code)
}

func (s *ReservationServiceTestSuite) TestFetchActiveReservationsAdaptsRows() {
	s.seedReservation("res1", "veh1", 5, 8, StatusActive)
	s.seedReservation("res2", "veh1", 10, 12, StatusCancelled)

	intervals, err := s.service.FetchActiveReservations([]string{"veh1"})
	s.Require().NoError(err)
	s.Len(intervals, 1)
	s.Equal("res1", intervals[0].ReservationID)
	s.Equal("ACTIVE", intervals[0].Status)
}
