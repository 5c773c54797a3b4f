package ledger

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRateCache_FreshnessWindow(t *testing.T) {
	now := time.Now()
	cache := NewRateCache()
	cache.now = func() time.Time { return now }

	cache.Put("USD", "BRL", decimal.RequireFromString("5.00"), now)

	testCases := []struct {
		name    string
		elapsed time.Duration
		wantHit bool
	}{
		{name: "immediately", elapsed: 0, wantHit: true},
		{name: "just inside the window", elapsed: RateTTL - time.Second, wantHit: true},
		{name: "exactly at the window", elapsed: RateTTL, wantHit: false},
		{name: "past the window", elapsed: RateTTL + time.Minute, wantHit: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cache.now = func() time.Time { return now.Add(tc.elapsed) }
			_, hit := cache.Get("USD", "BRL")
			if hit != tc.wantHit {
				t.Errorf("Get() hit = %v, want %v", hit, tc.wantHit)
			}
		})
	}
}

func TestRateCache_MissOnAbsentPair(t *testing.T) {
	cache := NewRateCache()
	if _, hit := cache.Get("EUR", "BRL"); hit {
		t.Error("Get() on an empty cache should miss")
	}
}

func TestRateCache_LastWriteWins(t *testing.T) {
	cache := NewRateCache()
	cache.Put("USD", "BRL", decimal.RequireFromString("5.00"), time.Now())
	want := decimal.RequireFromString("5.10")
	cache.Put("USD", "BRL", want, time.Now())

	got, hit := cache.Get("USD", "BRL")
	if !hit {
		t.Fatal("Get() should hit after Put")
	}
	if !got.Equal(want) {
		t.Errorf("Get() = %s, want %s", got, want)
	}
}

func TestRateCache_PairsAreOrdered(t *testing.T) {
	cache := NewRateCache()
	cache.Put("USD", "BRL", decimal.RequireFromString("5.00"), time.Now())
	if _, hit := cache.Get("BRL", "USD"); hit {
		t.Error("the reverse pair should be a distinct key")
	}
}

func TestRateCache_ConcurrentAccess(t *testing.T) {
	cache := NewRateCache()
	rate := decimal.RequireFromString("5.00")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cache.Put("USD", "BRL", rate, time.Now())
		}()
		go func() {
			defer wg.Done()
			if got, hit := cache.Get("USD", "BRL"); hit && !got.Equal(rate) {
				t.Errorf("Get() observed a corrupt entry: %s", got)
			}
		}()
	}
	wg.Wait()

	got, hit := cache.Get("USD", "BRL")
	if !hit || !got.Equal(rate) {
		t.Errorf("after concurrent writes Get() = %s, %v; want %s, true", got, hit, rate)
	}
}
