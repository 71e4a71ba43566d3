package schema

import (
	"fmt"
	"time"
	// Zone lookups must not depend on the host's zoneinfo installation.
	_ "time/tzdata"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultTimezoneCacheSize covers every zone a realistic feed references.
const DefaultTimezoneCacheSize = 128

// TimezoneCache remembers which IANA zone names resolve, so each distinct
// agency_timezone or stop_timezone is loaded from the zoneinfo database once.
type TimezoneCache struct {
	cache *lru.Cache[string, bool]
}

func NewTimezoneCache(size int) (*TimezoneCache, error) {
	if size <= 0 {
		size = DefaultTimezoneCacheSize
	}
	c, err := lru.New[string, bool](size)
	if err != nil {
		return nil, fmt.Errorf("create timezone cache: %w", err)
	}
	return &TimezoneCache{cache: c}, nil
}

// Valid reports whether name is a loadable IANA zone. "Local" and the empty
// name are accepted by time.LoadLocation but are not valid in a feed.
func (t *TimezoneCache) Valid(name string) bool {
	if name == "" || name == "Local" {
		return false
	}
	if ok, hit := t.cache.Get(name); hit {
		return ok
	}
	_, err := time.LoadLocation(name)
	ok := err == nil
	t.cache.Add(name, ok)
	return ok
}

// Len is the number of zone names currently cached.
func (t *TimezoneCache) Len() int {
	return t.cache.Len()
}
