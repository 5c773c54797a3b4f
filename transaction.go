package ledger

import (
	"fmt"

	"github.com/dmelo/ledger/date"
	"github.com/shopspring/decimal"
)

// Kind discriminates the two transaction variants.
type Kind int

const (
	// Income increases the balance by its home-currency amount.
	Income Kind = iota
	// Expense decreases the balance by its home-currency amount.
	Expense
)

func (k Kind) String() string {
	switch k {
	case Income:
		return "income"
	case Expense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense":
		return Expense, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is a single ledger entry. The original amount is what the user
// entered, in the currency they entered it; the home amount is its converted
// value in the ledger's home currency, set exactly once at commit time.
type Transaction struct {
	id       string
	kind     Kind
	day      date.Date
	original Money
	home     Money  // zero (no currency) until conversion
	category string // category id, weak reference
	memo     string
}

// NewTransaction validates the inputs and builds an uncommitted transaction.
// The home amount is not set yet; the factory sets it after conversion.
// Future dates are allowed here, the confirmation step belongs to the caller.
func NewTransaction(id string, kind Kind, day date.Date, amount decimal.Decimal, currency, categoryID, memo string) (Transaction, error) {
	if day.IsZero() {
		return Transaction{}, ErrInvalidDate
	}
	if !amount.IsPositive() {
		return Transaction{}, fmt.Errorf("%w: got %s", ErrInvalidAmount, amount)
	}
	if err := ValidateCurrency(currency); err != nil {
		return Transaction{}, err
	}
	return Transaction{
		id:       id,
		kind:     kind,
		day:      day,
		original: M(amount, currency),
		category: categoryID,
		memo:     memo,
	}, nil
}

func (t Transaction) ID() string       { return t.id }
func (t Transaction) Kind() Kind       { return t.kind }
func (t Transaction) When() date.Date  { return t.day }
func (t Transaction) Original() Money  { return t.original }
func (t Transaction) Home() Money      { return t.home }
func (t Transaction) CategoryID() string { return t.category }
func (t Transaction) Memo() string     { return t.memo }

// HasHome reports whether the home-currency amount has been set. Committed
// transactions always have it; rows loaded from an old file may not.
func (t Transaction) HasHome() bool { return t.home.Currency() != "" }

// WithHome returns a copy of the transaction with its home amount set.
func (t Transaction) WithHome(home Money) Transaction {
	t.home = home
	return t
}

// value is the amount aggregations read: the home amount when present, else
// the original amount. The fallback guards against partially migrated files.
func (t Transaction) value() Money {
	if t.HasHome() {
		return t.home
	}
	return t.original
}

// BalanceContribution returns the signed impact of the transaction on the
// balance: +home for an income, -home for an expense.
func (t Transaction) BalanceContribution() Money {
	if t.kind == Expense {
		return t.value().Neg()
	}
	return t.value()
}

// Equal reports whether both transactions have the same identity. Two
// transactions are equal iff their ids match, regardless of other fields.
func (t Transaction) Equal(o Transaction) bool { return t.id == o.id }

// SetCategory changes the category reference. Amount and kind are fixed at
// construction and have no setter.
func (t *Transaction) SetCategory(categoryID string) { t.category = categoryID }

// SetMemo changes the free-text description.
func (t *Transaction) SetMemo(memo string) { t.memo = memo }

func (t Transaction) String() string {
	return fmt.Sprintf("%s %s %s (%s)", t.day, t.kind, t.value(), t.memo)
}
