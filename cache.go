package sunshift

import (
	"time"

	"github.com/maypok86/otter/v2"
)

type cacheKey struct {
	loc  Coordinates
	date time.Time
}

// CachingProvider memoizes another Provider's results per location and
// calendar date. Errors are not cached.
type CachingProvider struct {
	next  Provider
	cache *otter.Cache[cacheKey, RiseSet]
}

// NewCachingProvider wraps next with a cache holding up to size days.
func NewCachingProvider(next Provider, size int) *CachingProvider {
	return &CachingProvider{
		next: next,
		cache: otter.Must(&otter.Options[cacheKey, RiseSet]{
			MaximumSize: size,
		}),
	}
}

func (c *CachingProvider) RiseSet(loc Coordinates, date time.Time) (RiseSet, error) {
	y, m, d := date.Date()
	key := cacheKey{loc: loc, date: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
	if rs, ok := c.cache.GetIfPresent(key); ok {
		return rs, nil
	}
	rs, err := c.next.RiseSet(loc, date)
	if err != nil {
		return RiseSet{}, err
	}
	c.cache.Set(key, rs)
	return rs, nil
}

// Len returns the approximate number of cached days.
func (c *CachingProvider) Len() int {
	return c.cache.EstimatedSize()
}
