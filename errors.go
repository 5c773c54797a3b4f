package ledger

import "errors"

// Sentinel errors returned by the ledger engine. Callers match them with
// errors.Is; the wrapped message carries the context.
var (
	// ErrInvalidAmount rejects a non-positive original amount before any state change.
	ErrInvalidAmount = errors.New("amount must be positive")
	// ErrInvalidDate rejects a transaction with no date.
	ErrInvalidDate = errors.New("transaction date is missing")
	// ErrRateUnavailable means the external rate source is unreachable or its
	// response did not contain a usable rate. Recoverable with a manual rate.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
	// ErrConversionRequired means the rate source failed and no manual rate was
	// supplied; the transaction was not committed.
	ErrConversionRequired = errors.New("conversion to the home currency required")
	// ErrInsufficientBalance means committing the expense would drive the
	// balance below zero under the non-negative policy.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrCategoryNotFound is returned by strict category lookups. Aggregations
	// never return it; they fold dangling references into "uncategorized".
	ErrCategoryNotFound = errors.New("category not found")
)
