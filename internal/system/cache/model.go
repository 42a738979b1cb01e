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
	"strings"
	"time"
)

// CacheKey represents a key for the cache.
type CacheKey struct {
	Key string
}

// NewCacheKey builds a cache key following the domain:scope:params convention.
func NewCacheKey(domain string, parts ...string) CacheKey {
	if len(parts) == 0 {
		return CacheKey{Key: domain}
	}
	return CacheKey{Key: domain + keySeparator + strings.Join(parts, keySeparator)}
}

// ToString returns the string representation of the CacheKey.
func (key CacheKey) ToString() string {
	return key.Key
}

// CacheEntry represents a cache entry.
type CacheEntry[T any] struct {
	Value      T
	CreatedAt  time.Time
	ExpiryTime time.Time
	HitCount   int64
}

// CacheStat represents cache statistics.
type CacheStat struct {
	Enabled    bool
	Size       int
	MaxSize    int
	HitCount   int64
	MissCount  int64
	HitRate    float64
	EvictCount int64
}

// MatchPattern reports whether the key matches the given wildcard pattern.
// The only metacharacter is '*', which matches any (possibly empty) substring.
func MatchPattern(key, pattern string) bool {
	if pattern == "" {
		return key == ""
	}

	segments := strings.Split(pattern, "*")
	if len(segments) == 1 {
		return key == pattern
	}

	if !strings.HasPrefix(key, segments[0]) {
		return false
	}
	key = key[len(segments[0]):]

	last := segments[len(segments)-1]
	if !strings.HasSuffix(key, last) {
		return false
	}
	key = key[:len(key)-len(last)]

	for _, segment := range segments[1 : len(segments)-1] {
		if segment == "" {
			continue
		}
		idx := strings.Index(key, segment)
		if idx < 0 {
			return false
		}
		key = key[idx+len(segment):]
	}

	return true
}
