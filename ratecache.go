package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// RateTTL is the freshness window of a cached exchange rate.
const RateTTL = 10 * time.Minute

// pair is an ordered (from, to) currency tuple used as cache key.
type pair struct {
	from, to string
}

type rateEntry struct {
	rate      decimal.Decimal
	fetchedAt time.Time
}

// RateCache holds the most recent exchange rate per currency pair. It is safe
// for concurrent use; writes to the same key are last-write-wins. There is no
// capacity policy: the key space is the small finite set of currency pairs.
type RateCache struct {
	mu      sync.RWMutex
	entries map[pair]rateEntry
	now     func() time.Time // for tests
}

// NewRateCache returns an empty cache.
func NewRateCache() *RateCache {
	return &RateCache{
		entries: make(map[pair]rateEntry),
		now:     time.Now,
	}
}

// Get returns the cached rate for the pair if it is still fresh. A stale or
// absent entry is a miss; expired data is never returned.
func (c *RateCache) Get(from, to string) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[pair{from, to}]
	if !ok || c.now().Sub(e.fetchedAt) >= RateTTL {
		return decimal.Decimal{}, false
	}
	return e.rate, true
}

// Put stores a rate for the pair, replacing any previous entry.
func (c *RateCache) Put(from, to string, rate decimal.Decimal, fetchedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[pair{from, to}] = rateEntry{rate: rate, fetchedAt: fetchedAt}
}
