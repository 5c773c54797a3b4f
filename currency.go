package ledger

import (
	"fmt"
	"slices"
)

// DefaultHomeCurrency is the currency balances are expressed in unless the
// accounting system is constructed with another one.
const DefaultHomeCurrency = "BRL"

// currencies is the fixed set of supported currency codes. The rate provider
// quotes all of them against each other.
var currencies = []string{"ARS", "BRL", "BTC", "EUR", "GBP", "JPY", "USD"}

// ValidateCurrency checks that the currency code belongs to the supported set.
func ValidateCurrency(code string) error {
	if slices.Contains(currencies, code) {
		return nil
	}
	return fmt.Errorf("unsupported currency %q (supported: %v)", code, currencies)
}

// Currencies returns the supported currency codes in alphabetical order.
func Currencies() []string {
	return slices.Clone(currencies)
}
