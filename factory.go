package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmelo/ledger/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOptions tunes the commit policy for a single creation.
type CreateOptions struct {
	// ManualRate is the fallback conversion rate used only when the rate
	// source fails. Zero means no fallback was supplied.
	ManualRate decimal.Decimal
	// AllowNegative disables the balance-floor check for expenses.
	AllowNegative bool
}

// Create builds a transaction end to end and commits it to the ledger:
// validate, convert to the home currency, check the balance floor, append.
// Conversion always happens before the balance check: the floor decision uses
// the home-currency amount, never the original one. On any error the ledger
// is left untouched.
func (as *AccountingSystem) Create(ctx context.Context, kind Kind, day date.Date, amount decimal.Decimal, currency, categoryID, memo string, opts CreateOptions) (Transaction, error) {
	if currency == "" {
		currency = as.HomeCurrency
	}
	tx, err := NewTransaction(uuid.NewString(), kind, day, amount, currency, categoryID, memo)
	if err != nil {
		return Transaction{}, err
	}
	if categoryID != "" {
		if _, err := as.Categories.Require(categoryID); err != nil {
			return Transaction{}, err
		}
	}

	home, err := as.homeAmount(ctx, amount, currency, opts.ManualRate)
	if err != nil {
		return Transaction{}, err
	}
	tx = tx.WithHome(M(home, as.HomeCurrency))

	if kind == Expense && !opts.AllowNegative {
		projected := as.Ledger.Balance().Add(tx.BalanceContribution())
		if projected.IsNegative() {
			return Transaction{}, fmt.Errorf("%w: this expense would leave %s", ErrInsufficientBalance, projected)
		}
	}

	as.Ledger.Append(tx)
	return tx, nil
}

// homeAmount converts the entered amount to the home currency. When the rate
// source fails and a manual rate was supplied, the amount is computed with it
// directly, with no further network attempt.
func (as *AccountingSystem) homeAmount(ctx context.Context, amount decimal.Decimal, currency string, manualRate decimal.Decimal) (decimal.Decimal, error) {
	if currency == as.HomeCurrency {
		return amount, nil
	}
	home, err := as.Rates.Convert(ctx, amount, currency, as.HomeCurrency)
	if err == nil {
		return home, nil
	}
	if !errors.Is(err, ErrRateUnavailable) {
		return decimal.Decimal{}, err
	}
	if manualRate.IsPositive() {
		return amount.Mul(manualRate), nil
	}
	return decimal.Decimal{}, fmt.Errorf("%w (%s to %s): %v", ErrConversionRequired, currency, as.HomeCurrency, err)
}
