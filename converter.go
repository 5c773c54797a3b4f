package ledger

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateSource fetches a currency-pair rate from an external provider. A call
// performs exactly one round trip: retry policy, if any, belongs to the
// caller. Failures wrap ErrRateUnavailable.
type RateSource interface {
	Fetch(ctx context.Context, from, to string) (decimal.Decimal, error)
}

// Converter answers "how much is this amount in that currency", backed by a
// RateCache and a RateSource.
type Converter struct {
	cache  *RateCache
	source RateSource
}

// NewConverter returns a converter using the given cache and source.
func NewConverter(cache *RateCache, source RateSource) *Converter {
	return &Converter{cache: cache, source: source}
}

// Convert returns amount converted from one currency to the other. Identity
// conversions return the amount unchanged without touching cache or source.
// On source failure the error propagates; the converter never guesses a rate.
func (c *Converter) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	rate, err := c.Rate(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(rate), nil
}

// Rate returns the exchange rate for the pair, from the cache when fresh,
// from the source otherwise. A successful fetch populates the cache, visible
// to subsequent calls within the TTL window.
func (c *Converter) Rate(ctx context.Context, from, to string) (decimal.Decimal, error) {
	if rate, ok := c.cache.Get(from, to); ok {
		return rate, nil
	}
	// No lock is held across the network call. If two fetches for the same
	// pair race, last write wins: both carry the same external rate and the
	// staleness risk is bounded by the race window.
	rate, err := c.source.Fetch(ctx, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}
	c.cache.Put(from, to, rate, c.cache.now())
	return rate, nil
}
