// Package ledger implements a currency-aware personal ledger: incomes and
// expenses entered in arbitrary currencies, converted to a home currency with
// rates fetched from an external provider, and aggregated into balances and
// reports.
//
// The package is organized around a few small pieces:
//
//   - Transaction, the dated income/expense entry with its signed balance
//     contribution.
//   - RateCache and Converter, the rate lookup subsystem: a process-local
//     cache with a 10 minute freshness window in front of a RateSource.
//   - AccountingSystem, the explicitly constructed context object that owns
//     the transaction and category collections and orchestrates the creation
//     of new transactions (conversion first, then the balance-floor check).
//
// Persistence is plain JSON files in a data directory; a missing or corrupt
// file degrades to an empty collection, never to a startup failure.
package ledger
