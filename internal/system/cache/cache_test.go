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
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/caravel-rentals/caravel/internal/system/config"
)

type CacheTestSuite struct {
	suite.Suite
	cacheConfig config.CacheConfig
}

func TestCacheSuite(t *testing.T) {
	suite.Run(t, new(CacheTestSuite))
}

func (s *CacheTestSuite) SetupTest() {
	s.cacheConfig = config.CacheConfig{
		Properties: []config.CacheProperty{
			{Name: "AvailabilityCache", Size: 100, TTL: 300, Dedup: true},
			{Name: "LocationCache", Size: 10, TTL: 600},
			{Name: "DisabledCache", Disabled: true},
		},
	}
}

func (s *CacheTestSuite) TestGetOrSetInvokesFactoryOncePerKey() {
	c := newCache[string](s.cacheConfig, "LocationCache", nil)
	key := NewCacheKey("location", "loc1")

	calls := 0
	factory := func() (string, error) {
		calls++
		return "computed", nil
	}

	value, err := c.GetOrSet(key, factory)
	s.Require().NoError(err)
	s.Equal("computed", value)

	value, err = c.GetOrSet(key, factory)
	s.Require().NoError(err)
	s.Equal("computed", value)
	s.Equal(1, calls)
}

func (s *CacheTestSuite) TestGetOrSetDoesNotCacheFactoryErrors() {
	c := newCache[string](s.cacheConfig, "LocationCache", nil)
	key := NewCacheKey("location", "loc1")

	wantErr := errors.New("upstream failed")
	_, err := c.GetOrSet(key, func() (string, error) { return "", wantErr })
	s.Require().ErrorIs(err, wantErr)

	value, err := c.GetOrSet(key, func() (string, error) { return "recovered", nil })
	s.Require().NoError(err)
	s.Equal("recovered", value)
}

func (s *CacheTestSuite) TestGetOrSetDeduplicatesConcurrentMisses() {
	c := newCache[string](s.cacheConfig, "AvailabilityCache", nil)
	key := NewCacheKey("avail", "loc1", "2030-01-05", "2030-01-08")

	var calls int64
	release := make(chan struct{})
	factory := func() (string, error) {
		atomic.AddInt64(&calls, 1)
		<-release
		return "resolved", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := c.GetOrSet(key, factory)
			s.NoError(err)
			s.Equal("resolved", value)
		}()
	}

	close(release)
	wg.Wait()
	s.Equal(int64(1), atomic.LoadInt64(&calls))
}

func (s *CacheTestSuite) TestDisabledCacheAlwaysInvokesFactory() {
	c := newCache[string](s.cacheConfig, "DisabledCache", nil)
	s.False(c.IsEnabled())

	key := NewCacheKey("location", "loc1")
	calls := 0
	for i := 0; i < 3; i++ {
		value, err := c.GetOrSet(key, func() (string, error) {
			calls++
			return "fresh", nil
		})
		s.Require().NoError(err)
		s.Equal("fresh", value)
	}
	s.Equal(3, calls)

	_, found := c.Get(key)
	s.False(found)
	s.False(c.GetStats().Enabled)
}

func (s *CacheTestSuite) TestGloballyDisabledCaching() {
	c := newCache[string](config.CacheConfig{Disabled: true}, "AvailabilityCache", nil)
	s.False(c.IsEnabled())
}

func (s *CacheTestSuite) TestProviderReturnsSameCacheForName() {
	p := NewProvider(s.cacheConfig, nil)
	defer p.Close()

	first := GetCache[string](p, "LocationCache")
	second := GetCache[string](p, "LocationCache")

	key := NewCacheKey("location", "loc1")
	s.Require().NoError(first.Set(key, "shared"))

	value, found := second.Get(key)
	s.True(found)
	s.Equal("shared", value)
}

func (s *CacheTestSuite) TestProviderTypeMismatchReturnsDisabledCache() {
	p := NewProvider(s.cacheConfig, nil)
	defer p.Close()

	first := GetCache[string](p, "LocationCache")
	key := NewCacheKey("location", "loc1")
	s.Require().NoError(first.Set(key, "shared"))

	// The same name requested with another value type must not create a
	// second cache under the name.
	mismatched := GetCache[int](p, "LocationCache")
	s.False(mismatched.IsEnabled())
	_, found := mismatched.Get(key)
	s.False(found)

	stats := p.Stats()
	s.Len(stats, 1)
	s.Equal(1, stats["LocationCache"].Size)

	value, found := first.Get(key)
	s.True(found)
	s.Equal("shared", value)
}

func (s *CacheTestSuite) TestSetRejectsEmptyKey() {
	c := newCache[string](s.cacheConfig, "LocationCache", nil)

	err := c.Set(CacheKey{}, "value")
	s.Require().ErrorIs(err, ErrEmptyCacheKey)
	s.Equal(0, c.GetStats().Size)
}

func (s *CacheTestSuite) TestProviderStats() {
	p := NewProvider(s.cacheConfig, nil)
	defer p.Close()

	c := GetCache[string](p, "AvailabilityCache")
	key := NewCacheKey("avail", "loc1", "2030-01-05", "2030-01-08")
	s.Require().NoError(c.Set(key, "result"))
	_, _ = c.Get(key)

	stats := p.Stats()
	s.Require().Contains(stats, "AvailabilityCache")
	s.Equal(1, stats["AvailabilityCache"].Size)
	s.Equal(int64(1), stats["AvailabilityCache"].HitCount)
}
