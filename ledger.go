package ledger

import (
	"iter"
	"time"

	"github.com/dmelo/ledger/date"
)

// Ledger is the shared, mutable collection of transactions. Entries keep
// their insertion order; views sort on demand. The collection is owned by the
// caller: persistence happens at explicit boundaries, not here.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Append adds transactions to the ledger.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
}

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction with the given id.
func (l *Ledger) Get(id string) (Transaction, bool) {
	for _, tx := range l.transactions {
		if tx.ID() == id {
			return tx, true
		}
	}
	return Transaction{}, false
}

// Remove deletes the transaction with the given id and reports whether it
// existed.
func (l *Ledger) Remove(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID() == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// Edit applies fn to the transaction with the given id. Only category and
// memo are editable through fn; amounts and kind are immutable.
func (l *Ledger) Edit(id string, fn func(*Transaction)) bool {
	for i := range l.transactions {
		if l.transactions[i].ID() == id {
			fn(&l.transactions[i])
			return true
		}
	}
	return false
}

// Transactions returns an iterator over transactions in insertion order,
// keeping those accepted by all filters.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, tx := range l.transactions {
			accept := true
			for _, filter := range filters {
				if !filter(tx) {
					accept = false
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(tx) {
				return
			}
		}
	}
}

// ByKind keeps transactions of the given kind.
func ByKind(k Kind) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Kind() == k }
}

// ByCategory keeps transactions referencing the given category id.
func ByCategory(id string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.CategoryID() == id }
}

// InMonth keeps transactions dated in the given year and month.
func InMonth(year int, month time.Month) func(Transaction) bool {
	return func(tx Transaction) bool {
		return tx.When().Year() == year && tx.When().Month() == month
	}
}

// OldestTransactionDate returns the date of the earliest transaction, or the
// zero date for an empty ledger.
func (l *Ledger) OldestTransactionDate() date.Date {
	var oldest date.Date
	for _, tx := range l.transactions {
		if oldest.IsZero() || tx.When().Before(oldest) {
			oldest = tx.When()
		}
	}
	return oldest
}
