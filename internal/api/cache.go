package api

import (
	"os"
	"strconv"
	"sync"
)

// ReportCache is a thread-safe LRU cache for computed check responses.
// It is cleared whenever the dataset is reloaded.
type ReportCache struct {
	mu      sync.Mutex
	maxSize int
	entries map[string]*CheckResponse
	order   []string // oldest first
}

// NewReportCache creates a cache with the given maximum number of entries.
// If maxSize <= 0, it defaults to 50.
func NewReportCache(maxSize int) *ReportCache {
	if maxSize <= 0 {
		maxSize = 50
	}
	return &ReportCache{
		maxSize: maxSize,
		entries: make(map[string]*CheckResponse),
	}
}

// NewReportCacheFromEnv creates a cache with size from REPORT_CACHE_SIZE.
func NewReportCacheFromEnv() *ReportCache {
	size := 50
	if v := os.Getenv("REPORT_CACHE_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			size = parsed
		}
	}
	return NewReportCache(size)
}

// Get retrieves a response from the cache, or nil if not found.
func (c *ReportCache) Get(key string) *CheckResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp, ok := c.entries[key]
	if !ok {
		return nil
	}

	// Move to end (most recently used)
	c.moveToEnd(key)
	return resp
}

// Put adds a response to the cache, evicting the oldest if full.
func (c *ReportCache) Put(key string, resp *CheckResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		c.entries[key] = resp
		c.moveToEnd(key)
		return
	}

	// Evict oldest if at capacity
	for len(c.entries) >= c.maxSize && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = resp
	c.order = append(c.order, key)
}

// Clear drops every cached response.
func (c *ReportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*CheckResponse)
	c.order = nil
}

func (c *ReportCache) moveToEnd(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, key)
			return
		}
	}
}
