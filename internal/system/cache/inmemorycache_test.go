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
	"time"

	"github.com/stretchr/testify/suite"
)

type InMemoryCacheTestSuite struct {
	suite.Suite
}

func TestInMemoryCacheSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}

func (s *InMemoryCacheTestSuite) TestSetAndGet() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)

	key := NewCacheKey("avail", "loc1", "2030-01-05", "2030-01-08")
	s.Require().NoError(c.Set(key, "value1"))

	value, found := c.Get(key)
	s.True(found)
	s.Equal("value1", value)

	_, found = c.Get(NewCacheKey("avail", "loc2", "2030-01-05", "2030-01-08"))
	s.False(found)
}

func (s *InMemoryCacheTestSuite) TestSetReplacesExistingEntry() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)

	key := NewCacheKey("location", "loc1")
	s.Require().NoError(c.Set(key, "first"))
	s.Require().NoError(c.Set(key, "second"))

	value, found := c.Get(key)
	s.True(found)
	s.Equal("second", value)
	s.Equal(1, c.GetStats().Size)
}

func (s *InMemoryCacheTestSuite) TestSetEmptyKeyIsAnError() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)

	err := c.Set(CacheKey{}, "value1")
	s.Require().ErrorIs(err, ErrEmptyCacheKey)
	s.Equal(0, c.GetStats().Size)
}

func (s *InMemoryCacheTestSuite) TestExpiredEntryIsAMiss() {
	c := newInMemoryCache[string]("TestCache", true, 10, 20*time.Millisecond, nil)

	key := NewCacheKey("avail", "loc1", "2030-01-05", "2030-01-08")
	s.Require().NoError(c.Set(key, "value1"))

	time.Sleep(40 * time.Millisecond)

	_, found := c.Get(key)
	s.False(found)

	stats := c.GetStats()
	s.Equal(int64(0), stats.HitCount)
	s.Equal(int64(1), stats.MissCount)
	s.Equal(0, stats.Size)
}

func (s *InMemoryCacheTestSuite) TestLRUEvictionOrder() {
	c := newInMemoryCache[string]("TestCache", true, 2, time.Minute, nil)

	keyA := NewCacheKey("avail", "a")
	keyB := NewCacheKey("avail", "b")
	keyC := NewCacheKey("avail", "c")

	s.Require().NoError(c.Set(keyA, "a"))
	s.Require().NoError(c.Set(keyB, "b"))

	// Touch A so B becomes the least recently used entry.
	_, found := c.Get(keyA)
	s.Require().True(found)

	s.Require().NoError(c.Set(keyC, "c"))

	_, found = c.Get(keyB)
	s.False(found)
	_, found = c.Get(keyA)
	s.True(found)
	_, found = c.Get(keyC)
	s.True(found)
	s.Equal(int64(1), c.GetStats().EvictCount)
}

func (s *InMemoryCacheTestSuite) TestCapacityNeverExceeded() {
	c := newInMemoryCache[int]("TestCache", true, 3, time.Minute, nil)

	for i := 0; i < 10; i++ {
		s.Require().NoError(c.Set(NewCacheKey("avail", string(rune('a'+i))), i))
		s.LessOrEqual(c.GetStats().Size, 3)
	}
	s.Equal(3, c.GetStats().Size)
	s.Equal(int64(7), c.GetStats().EvictCount)
}

func (s *InMemoryCacheTestSuite) TestInvalidateReportsExistence() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)

	key := NewCacheKey("customer:history", "cust1")
	s.Require().NoError(c.Set(key, "history"))

	s.True(c.Invalidate(key))
	s.False(c.Invalidate(key))
}

func (s *InMemoryCacheTestSuite) TestInvalidatePattern() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)

	s.Require().NoError(c.Set(CacheKey{Key: "avail:loc1:2030-01-05:2030-01-08"}, "r1"))
	s.Require().NoError(c.Set(CacheKey{Key: "avail:loc1:2030-02-01:2030-02-03"}, "r2"))
	s.Require().NoError(c.Set(CacheKey{Key: "avail:loc2:2030-01-05:2030-01-08"}, "r3"))

	removed := c.InvalidatePattern("avail:loc1:*")
	s.Equal(2, removed)

	_, found := c.Get(CacheKey{Key: "avail:loc2:2030-01-05:2030-01-08"})
	s.True(found)

	s.Equal(0, c.InvalidatePattern("avail:loc1:*"))
}

func (s *InMemoryCacheTestSuite) TestOnRemoveHookRunsForEveryRemoval() {
	removed := []string{}
	c := newInMemoryCache[string]("TestCache", true, 1, time.Minute, func(key CacheKey) {
		removed = append(removed, key.Key)
	})

	s.Require().NoError(c.Set(NewCacheKey("avail", "a"), "a"))
	s.Require().NoError(c.Set(NewCacheKey("avail", "b"), "b")) // evicts a
	s.True(c.Invalidate(NewCacheKey("avail", "b")))

	s.Equal([]string{"avail:a", "avail:b"}, removed)
}

func (s *InMemoryCacheTestSuite) TestCleanupExpiredSweepsOnlyExpired() {
	c := newInMemoryCache[string]("TestCache", true, 10, 20*time.Millisecond, nil)
	s.Require().NoError(c.Set(NewCacheKey("avail", "old"), "old"))

	time.Sleep(40 * time.Millisecond)
	s.Require().NoError(c.Set(NewCacheKey("avail", "fresh"), "fresh"))

	c.CleanupExpired()

	stats := c.GetStats()
	s.Equal(1, stats.Size)
	_, found := c.Get(NewCacheKey("avail", "fresh"))
	s.True(found)
}

func (s *InMemoryCacheTestSuite) TestStatsHitRatePercentage() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)
	key := NewCacheKey("location", "loc1")
	s.Require().NoError(c.Set(key, "v"))

	_, _ = c.Get(key)                          // hit
	_, _ = c.Get(key)                          // hit
	_, _ = c.Get(NewCacheKey("location", "x")) // miss
	_, _ = c.Get(NewCacheKey("location", "y")) // miss

	stats := c.GetStats()
	s.Equal(int64(2), stats.HitCount)
	s.Equal(int64(2), stats.MissCount)
	s.InDelta(50.0, stats.HitRate, 0.001)
}

func (s *InMemoryCacheTestSuite) TestClearResetsCounters() {
	c := newInMemoryCache[string]("TestCache", true, 10, time.Minute, nil)
	key := NewCacheKey("location", "loc1")
	s.Require().NoError(c.Set(key, "v"))
	_, _ = c.Get(key)

	s.Require().NoError(c.Clear())

	stats := c.GetStats()
	s.Equal(0, stats.Size)
	s.Equal(int64(0), stats.HitCount)
	s.Equal(int64(0), stats.MissCount)
	s.Equal(int64(0), stats.EvictCount)
}
