package ledger

import (
	"sort"
)

// Uncategorized is the bucket name aggregations use for transactions whose
// category is absent or references a deleted category.
const Uncategorized = "uncategorized"

// This file contains the read-only views over the transaction collection.
// They are pure functions of the snapshot they are given: no mutation, and
// they read the home amount when present, else the original amount.

// Balance returns the sum of all balance contributions.
func (l *Ledger) Balance() Money {
	var total Money
	for tx := range l.Transactions() {
		total = total.Add(tx.BalanceContribution())
	}
	return total
}

// TotalByKind returns the sum of absolute contributions for one kind, e.g.
// all income or all expenses, as a positive amount.
func (l *Ledger) TotalByKind(k Kind) Money {
	var total Money
	for tx := range l.Transactions(ByKind(k)) {
		total = total.Add(tx.BalanceContribution().Abs())
	}
	return total
}

// TotalsByCategory returns, for one kind, the total absolute amount per
// category display name. Transactions with no category, or referencing a
// category missing from cats, fold into the Uncategorized bucket.
func (l *Ledger) TotalsByCategory(k Kind, cats *Categories) map[string]Money {
	totals := make(map[string]Money)
	for tx := range l.Transactions(ByKind(k)) {
		name := Uncategorized
		if cat, ok := cats.Find(tx.CategoryID()); ok {
			name = cat.Name
		}
		totals[name] = totals[name].Add(tx.BalanceContribution().Abs())
	}
	return totals
}

// Recent returns up to n transactions, latest date first. Transactions on the
// same day keep their insertion order (stable sort).
func (l *Ledger) Recent(n int) []Transaction {
	if n < 0 {
		n = 0
	}
	txs := make([]Transaction, len(l.transactions))
	copy(txs, l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].When().After(txs[j].When())
	})
	if n < len(txs) {
		txs = txs[:n]
	}
	return txs
}
