package comparator

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// resultCache wraps hashicorp/golang-lru with hit/miss counters.
// Evictions only ever happen on Put (a write), never on Get: reads never
// evict.
type resultCache struct {
	lru          *lru.Cache[ComparisonKey, ComparisonResult]
	hits, misses atomic.Uint64
}

func newResultCache(size uint) *resultCache {
	c, err := lru.New[ComparisonKey, ComparisonResult](int(size))
	if err != nil {
		// size is validated non-zero by Config.Validate before this is
		// ever called, so lru.New can only fail on a bad size.
		panic(err)
	}
	return &resultCache{lru: c}
}

func (c *resultCache) get(key ComparisonKey) (ComparisonResult, bool) {
	res, ok := c.lru.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return res, ok
}

func (c *resultCache) put(key ComparisonKey, res ComparisonResult) {
	c.lru.Add(key, res)
}

func (c *resultCache) stats() CacheStats {
	hits, misses := c.hits.Load(), c.misses.Load()
	total := hits + misses
	var rate float64
	if total > 0 {
		rate = float64(hits) / float64(total)
	}
	return CacheStats{
		Hits:    hits,
		Misses:  misses,
		Size:    c.lru.Len(),
		HitRate: rate,
	}
}

func (c *resultCache) clear() {
	c.lru.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}
