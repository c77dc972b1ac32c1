package analyze

import (
	"sync"
	"time"

	"ticker-sentiment/internal/types"
)

// DefaultCacheTTL is how long an aggregate record is served before being
// recomputed.
const DefaultCacheTTL = 300 * time.Second

// Cache memoizes aggregate records per ticker for a bounded time, so
// repeated requests within the TTL avoid the expensive fetch-and-analyze
// pass. Entries live only as long as the owning process.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
	locks   map[string]*sync.Mutex
	ttl     time.Duration
	now     func() time.Time
}

type cacheEntry struct {
	record    *types.AggregateRecord
	createdAt time.Time
}

// NewCache creates a cache with the given TTL. now may be nil for the
// wall clock; tests inject a fake clock.
func NewCache(ttl time.Duration, now func() time.Time) *Cache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{
		entries: make(map[string]*cacheEntry),
		locks:   make(map[string]*sync.Mutex),
		ttl:     ttl,
		now:     now,
	}
}

// GetOrCompute returns the cached record for ticker when it is younger
// than the TTL, otherwise invokes compute and stores the result. The
// check-then-compute sequence is serialized per ticker, so concurrent
// callers for the same ticker trigger exactly one computation.
func (c *Cache) GetOrCompute(ticker string, compute func() (*types.AggregateRecord, error)) (*types.AggregateRecord, error) {
	lock := c.tickerLock(ticker)
	lock.Lock()
	defer lock.Unlock()

	c.mu.Lock()
	entry, ok := c.entries[ticker]
	c.mu.Unlock()

	if ok && c.now().Sub(entry.createdAt) < c.ttl {
		return entry.record, nil
	}

	record, err := compute()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[ticker] = &cacheEntry{record: record, createdAt: c.now()}
	c.mu.Unlock()

	return record, nil
}

// Tickers returns the tickers with a stored record, regardless of age.
func (c *Cache) Tickers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	tickers := make([]string, 0, len(c.entries))
	for ticker := range c.entries {
		tickers = append(tickers, ticker)
	}
	return tickers
}

// Clear drops all stored records.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// tickerLock returns the per-ticker computation lock, creating it on
// first use.
func (c *Cache) tickerLock(ticker string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()

	lock, ok := c.locks[ticker]
	if !ok {
		lock = &sync.Mutex{}
		c.locks[ticker] = lock
	}
	return lock
}
