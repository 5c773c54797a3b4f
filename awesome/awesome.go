// Package awesome implements a ledger.RateSource backed by the AwesomeAPI
// currency quote service (https://economia.awesomeapi.com.br). It is free and
// requires no API key.
package awesome

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	ledger "github.com/dmelo/ledger"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the production endpoint of the quote service.
const DefaultBaseURL = "https://economia.awesomeapi.com.br"

const (
	connectTimeout = 10 * time.Second
	requestTimeout = 15 * time.Second
)

// Client fetches latest exchange rates. One Fetch is one GET; there are no
// retries at this layer. The timeouts bound every call so a hung remote never
// blocks the caller indefinitely.
type Client struct {
	BaseURL string
	http    *http.Client
}

// NewClient returns a client for the production endpoint.
func NewClient() *Client {
	dialer := &net.Dialer{Timeout: connectTimeout}
	return &Client{
		BaseURL: DefaultBaseURL,
		http: &http.Client{
			Timeout:   requestTimeout,
			Transport: &http.Transport{DialContext: dialer.DialContext},
		},
	}
}

// Fetch returns the latest rate quoted for the pair, e.g. how many BRL one
// USD buys for ("USD", "BRL"). All failure modes, transport errors, non-200
// statuses, and responses without a usable rate field, wrap
// ledger.ErrRateUnavailable so the caller can fall back to a manual rate.
func (c *Client) Fetch(ctx context.Context, from, to string) (decimal.Decimal, error) {
	// quotes come back keyed by the concatenated pair, e.g.:
	// {"USDBRL": {"code":"USD", "codein":"BRL", "bid":"5.4321", ...}}
	addr := fmt.Sprintf("%s/last/%s-%s", c.BaseURL, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("building request for %s-%s: %w", from, to, err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("fetching %s-%s: %v: %w", from, to, err, ledger.ErrRateUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("fetching %s-%s: %s: %w", from, to, resp.Status, ledger.ErrRateUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("reading %s-%s response: %v: %w", from, to, err, ledger.ErrRateUnavailable)
	}
	var jobj any
	if err := json.Unmarshal(body, &jobj); err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s-%s response: %v: %w", from, to, err, ledger.ErrRateUnavailable)
	}

	rate, err := extractRate(jobj, from, to)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing %s-%s response: %v: %w", from, to, err, ledger.ErrRateUnavailable)
	}
	return rate, nil
}

// extractRate pulls the first available numeric rate field for the pair out
// of the response. The service is not consistent across endpoints, so a few
// shapes are tolerated: the pair object with a "bid" or "result" field, or a
// top-level "result".
func extractRate(jobj any, from, to string) (decimal.Decimal, error) {
	paths := []string{
		fmt.Sprintf("$.%s%s.bid", from, to),
		fmt.Sprintf("$.%s%s.result", from, to),
		"$.result",
	}
	for _, path := range paths {
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			continue
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer: keep the first one if any.
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		rate, err := toDecimal(jval)
		if err != nil {
			continue
		}
		if rate.IsPositive() {
			return rate, nil
		}
	}
	return decimal.Decimal{}, fmt.Errorf("no rate found for %s%s", from, to)
}

// toDecimal converts a rate field to a decimal. The service quotes numbers as
// JSON strings ("bid":"5.4321") but some endpoints use plain numbers.
func toDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("rate field is %T, not a number", jval)
	}
}
