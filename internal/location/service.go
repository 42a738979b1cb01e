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

// Package location manages the rental branches of the fleet.
package location

import (
	"errors"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// errLocationNotFound signals a missing row through the cache factory.
var errLocationNotFound = errors.New("location not found")

// LocationServiceInterface defines the location management contract.
type LocationServiceInterface interface {
	GetLocationList() ([]Location, *serviceerror.ServiceError)
	GetLocation(locationID string) (*Location, *serviceerror.ServiceError)
	LocationExists(locationID string) (bool, error)
}

// locationService looks up locations with a cache-aside read path for by-id
// lookups. Locations change rarely, so entries expire by TTL only.
type locationService struct {
	store         locationStoreInterface
	locationCache cache.CacheInterface[*Location]
}

// NewLocationService creates a location service over the given cache provider.
func NewLocationService(cacheProvider *cache.Provider) LocationServiceInterface {
	return &locationService{
		store:         newLocationStore(),
		locationCache: cache.GetCache[*Location](cacheProvider, cache.LocationCacheName),
	}
}

// GetLocationList retrieves every rental location.
func (ls *locationService) GetLocationList() ([]Location, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	locations, err := ls.store.GetLocationList()
	if err != nil {
		logger.Error("Failed to list locations", log.Error(err))
		return nil, &ErrorInternalServerError
	}
	return locations, nil
}

// GetLocation retrieves a single location by id.
func (ls *locationService) GetLocation(locationID string) (*Location, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if locationID == "" {
		return nil, &ErrorInvalidLocationID
	}

	location, err := ls.locationCache.GetOrSet(locationCacheKey(locationID),
		func() (*Location, error) {
			found, storeErr := ls.store.GetLocationByID(locationID)
			if storeErr != nil {
				return nil, storeErr
			}
			if found == nil {
				return nil, errLocationNotFound
			}
			return found, nil
		})
	if err != nil {
		if errors.Is(err, errLocationNotFound) {
			return nil, &ErrorLocationNotFound
		}
		logger.Error("Failed to get location", log.Error(err),
			log.String(log.LoggerKeyLocationID, locationID))
		return nil, &ErrorInternalServerError
	}
	return location, nil
}

// LocationExists reports whether the location exists, serving from the cache
// when the location was recently read.
func (ls *locationService) LocationExists(locationID string) (bool, error) {
	if locationID == "" {
		return false, nil
	}
	if _, hit := ls.locationCache.Get(locationCacheKey(locationID)); hit {
		return true, nil
	}
	return ls.store.LocationExists(locationID)
}

// locationCacheKey builds the by-id cache key for a location.
func locationCacheKey(locationID string) cache.CacheKey {
	return cache.NewCacheKey("location", locationID)
}
