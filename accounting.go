package ledger

import (
	"fmt"
)

// AccountingSystem bundles everything the ledger operations need: the
// transaction collection, the category collection, the rate converter and the
// home currency. It is constructed once at startup and passed by reference to
// every component that needs it; there is no global state.
type AccountingSystem struct {
	Ledger       *Ledger
	Categories   *Categories
	Rates        *Converter
	HomeCurrency string
}

// NewAccountingSystem creates a new accounting system.
func NewAccountingSystem(l *Ledger, cats *Categories, rates *Converter, homeCurrency string) (*AccountingSystem, error) {
	if homeCurrency == "" {
		homeCurrency = DefaultHomeCurrency
	}
	if err := ValidateCurrency(homeCurrency); err != nil {
		return nil, fmt.Errorf("invalid home currency: %w", err)
	}
	if l == nil {
		l = NewLedger()
	}
	if cats == nil {
		cats = NewCategories()
	}
	return &AccountingSystem{
		Ledger:       l,
		Categories:   cats,
		Rates:        rates,
		HomeCurrency: homeCurrency,
	}, nil
}
