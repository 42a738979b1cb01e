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

package availability

import (
	"errors"

	"github.com/caravel-rentals/caravel/internal/system/cache"
	"github.com/caravel-rentals/caravel/internal/system/config"
	"github.com/caravel-rentals/caravel/internal/system/error/serviceerror"
	"github.com/caravel-rentals/caravel/internal/system/log"
)

// cachedAvailabilityService wraps the resolver with cache-aside reads.
// Validation always runs before the cache is consulted so invalid queries
// never occupy cache slots, and resolver failures are surfaced rather than
// cached.
type cachedAvailabilityService struct {
	inner        AvailabilityServiceInterface
	cache        cache.CacheInterface[*AvailabilityResult]
	maxRangeDays int
}

// errCachedServiceError carries a ServiceError through the generic cache
// factory, which only speaks error.
type errCachedServiceError struct {
	svcErr *serviceerror.ServiceError
}

func (e *errCachedServiceError) Error() string {
	return e.svcErr.Error
}

// NewCachedAvailabilityService decorates the given resolver with the
// availability cache.
func NewCachedAvailabilityService(inner AvailabilityServiceInterface,
	availabilityCache cache.CacheInterface[*AvailabilityResult]) AvailabilityServiceInterface {
	maxRangeDays := config.GetCaravelRuntime().Config.Booking.MaxRangeDays
	if maxRangeDays <= 0 {
		maxRangeDays = defaultMaxRangeDays
	}
	return &cachedAvailabilityService{
		inner:        inner,
		cache:        availabilityCache,
		maxRangeDays: maxRangeDays,
	}
}

// CheckAvailability serves the query from the cache when possible and falls
// back to the wrapped resolver on a miss.
func (cs *cachedAvailabilityService) CheckAvailability(query *AvailabilityQuery) (
	*AvailabilityResult, *serviceerror.ServiceError) {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, loggerComponentName))

	if svcErr := validateQuery(query, cs.maxRangeDays); svcErr != nil {
		return nil, svcErr
	}

	result, err := cs.cache.GetOrSet(query.CacheKey(), func() (*AvailabilityResult, error) {
		resolved, svcErr := cs.inner.CheckAvailability(query)
		if svcErr != nil {
			return nil, &errCachedServiceError{svcErr: svcErr}
		}
		return resolved, nil
	})
	if err != nil {
		var wrapped *errCachedServiceError
		if errors.As(err, &wrapped) {
			return nil, wrapped.svcErr
		}
		logger.Error("Availability cache lookup failed", log.Error(err),
			log.String(log.LoggerKeyLocationID, query.LocationID))
		return nil, &ErrorInternalServerError
	}
	return result, nil
}
