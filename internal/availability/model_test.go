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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(day int) time.Time {
	return time.Date(2030, time.June, day, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"FullyBefore", 1, 3, 5, 8, false},
		{"FullyAfter", 9, 12, 5, 8, false},
		{"BackToBackLeft", 2, 5, 5, 8, false},
		{"BackToBackRight", 8, 10, 5, 8, false},
		{"PartialLeft", 4, 6, 5, 8, true},
		{"PartialRight", 7, 10, 5, 8, true},
		{"Contained", 6, 7, 5, 8, true},
		{"Containing", 4, 10, 5, 8, true},
		{"Identical", 5, 8, 5, 8, true},
		{"SingleSharedDay", 7, 8, 7, 8, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(date(tc.aStart), date(tc.aEnd), date(tc.bStart), date(tc.bEnd))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOverlapsIgnoresTimeOfDay(t *testing.T) {
	aStart := time.Date(2030, time.June, 2, 23, 30, 0, 0, time.UTC)
	aEnd := time.Date(2030, time.June, 5, 1, 0, 0, 0, time.UTC)
	assert.False(t, Overlaps(aStart, aEnd, date(5), date(8)))
}

func TestAvailabilityQueryCacheKey(t *testing.T) {
	minRate, maxRate := 40.0, 90.5

	query := &AvailabilityQuery{
		LocationID: "loc1",
		StartDate:  date(5),
		EndDate:    date(8),
	}
	assert.Equal(t, "avail:loc1:2030-06-05:2030-06-08", query.CacheKey().ToString())

	query.VehicleType = "suv"
	query.MinDailyRate = &minRate
	query.MaxDailyRate = &maxRate
	assert.Equal(t, "avail:loc1:2030-06-05:2030-06-08:suv:min40:max90.5",
		query.CacheKey().ToString())
}
