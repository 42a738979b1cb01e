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

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPattern(t *testing.T) {
	testCases := []struct {
		name    string
		key     string
		pattern string
		want    bool
	}{
		{"ExactMatch", "avail:loc1:2030-01-05", "avail:loc1:2030-01-05", true},
		{"ExactMismatch", "avail:loc1:2030-01-05", "avail:loc2:2030-01-05", false},
		{"PrefixWildcard", "avail:loc1:2030-01-05:2030-01-08", "avail:loc1:*", true},
		{"PrefixWildcardOtherLocation", "avail:loc2:2030-01-05", "avail:loc1:*", false},
		{"WildcardMatchesEmpty", "avail:loc1:", "avail:loc1:*", true},
		{"SuffixWildcard", "customer:history:cust1", "*:cust1", true},
		{"MiddleWildcard", "avail:loc1:2030-01-05", "avail:*:2030-01-05", true},
		{"MiddleWildcardMismatch", "avail:loc1:2030-01-06", "avail:*:2030-01-05", false},
		{"StarOnly", "anything", "*", true},
		{"EmptyPattern", "", "", true},
		{"EmptyPatternNonEmptyKey", "avail", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchPattern(tc.key, tc.pattern))
		})
	}
}

func TestNewCacheKey(t *testing.T) {
	assert.Equal(t, "avail", NewCacheKey("avail").ToString())
	assert.Equal(t, "avail:loc1:2030-01-05", NewCacheKey("avail", "loc1", "2030-01-05").ToString())
}

func TestKeyConventionHelpers(t *testing.T) {
	assert.Equal(t, "avail:loc1:2030-01-05:2030-01-08",
		AvailabilityKey("loc1", "2030-01-05", "2030-01-08").ToString())
	assert.Equal(t, "avail:loc1:*", AvailabilityKeyPattern("loc1"))
	assert.Equal(t, "customer:history:cust1", CustomerHistoryKey("cust1").ToString())

	assert.True(t, MatchPattern(
		AvailabilityKey("loc1", "2030-01-05", "2030-01-08").Key,
		AvailabilityKeyPattern("loc1")))
}
