package core

import "fmt"

// PageCache is a bounded, insertion-ordered store of recently created page
// instances keyed by source type. Eviction is FIFO: once the capacity is
// exceeded the oldest entry is dropped. A capacity of zero disables caching
// entirely; nothing is ever stored or looked up.
//
// Not safe for concurrent use. Access is confined to the thread that owns
// the navigation engine.
type PageCache struct {
	capacity int
	entries  []cachedPage
}

type cachedPage struct {
	sourceType string
	page       Page
}

// NewPageCache creates a cache with the given capacity. Negative capacities
// are treated as zero.
func NewPageCache(capacity int) *PageCache {
	if capacity < 0 {
		capacity = 0
	}
	return &PageCache{capacity: capacity}
}

// Lookup scans from the most recently added entry to the oldest and returns
// the first whose type equals sourceType or whose page is target, along with
// the matched type. Either criterion may be zero-valued. Always misses when
// caching is disabled.
//
// Matching against target uses identity, not value equality.
func (c *PageCache) Lookup(sourceType string, target any) (Page, string, bool) {
	if c.capacity == 0 {
		return nil, "", false
	}
	for i := len(c.entries) - 1; i >= 0; i-- {
		e := c.entries[i]
		if (sourceType != "" && e.sourceType == sourceType) || (target != nil && e.page == target) {
			return e.page, e.sourceType, true
		}
	}
	return nil, "", false
}

// CreateOrReuse creates a page for sourceType through factory and records
// it. With caching disabled the page is created fresh and never stored.
//
// A type that is already cached must not be constructed a second time; that
// case reports ErrDuplicateCacheEntry, which fails the navigation attempt
// instead of desynchronizing history and cache.
func (c *PageCache) CreateOrReuse(sourceType string, factory Factory) (Page, error) {
	if c.capacity == 0 {
		return factory.Create(sourceType)
	}
	for _, e := range c.entries {
		if e.sourceType == sourceType {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCacheEntry, sourceType)
		}
	}
	page, err := factory.Create(sourceType)
	if err != nil {
		return nil, err
	}
	c.entries = append(c.entries, cachedPage{sourceType: sourceType, page: page})
	c.evict()
	return page, nil
}

// TryAdd registers an externally supplied page. It is a silent no-op when
// the type or the identical page is already present, which makes the
// registration path idempotent.
func (c *PageCache) TryAdd(sourceType string, page Page) {
	if c.capacity == 0 || page == nil {
		return
	}
	for _, e := range c.entries {
		if e.sourceType == sourceType || e.page == page {
			return
		}
	}
	c.entries = append(c.entries, cachedPage{sourceType: sourceType, page: page})
	c.evict()
}

func (c *PageCache) evict() {
	for len(c.entries) > c.capacity {
		c.entries = c.entries[1:]
	}
}

// Clear drops all entries. Used when the navigation-stack feature is turned
// off and on state restore.
func (c *PageCache) Clear() {
	c.entries = nil
}

// Len returns the number of cached pages.
func (c *PageCache) Len() int { return len(c.entries) }

// Capacity returns the configured bound.
func (c *PageCache) Capacity() int { return c.capacity }
