package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dmelo/ledger/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// to persist transactions we use a dedicated proxy struct with tag
// annotations; the domain type stays free of persistence concerns.
type jtransaction struct {
	ID         string           `json:"id"`
	Kind       string           `json:"kind"`
	Date       date.Date        `json:"date"`
	Amount     decimal.Decimal  `json:"amount"`
	Currency   string           `json:"currency"`
	HomeAmount *decimal.Decimal `json:"homeAmount,omitempty"`
	Category   string           `json:"category,omitempty"`
	Memo       string           `json:"memo,omitempty"`
}

// EncodeTransactions writes the whole ledger as a pretty-printed JSON array.
func EncodeTransactions(w io.Writer, l *Ledger) error {
	list := make([]jtransaction, 0, l.Len())
	for tx := range l.Transactions() {
		jt := jtransaction{
			ID:       tx.ID(),
			Kind:     tx.Kind().String(),
			Date:     tx.When(),
			Amount:   tx.Original().Amount(),
			Currency: tx.Original().Currency(),
			Category: tx.CategoryID(),
			Memo:     tx.Memo(),
		}
		if tx.HasHome() {
			home := tx.Home().Amount()
			jt.HomeAmount = &home
		}
		list = append(list, jt)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// DecodeTransactions reads a JSON array of transactions. Decoding is lenient
// about missing home amounts (aggregations fall back to the original amount)
// but strict about unreadable files: the caller decides how to degrade.
func DecodeTransactions(r io.Reader, homeCurrency string) (*Ledger, error) {
	var list []jtransaction
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		if err == io.EOF { // empty file is an empty ledger
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("cannot decode transactions: %w", err)
	}
	l := NewLedger()
	for _, jt := range list {
		kind, err := ParseKind(jt.Kind)
		if err != nil {
			return nil, fmt.Errorf("cannot decode transaction %q: %w", jt.ID, err)
		}
		tx := Transaction{
			id:       jt.ID,
			kind:     kind,
			day:      jt.Date,
			original: M(jt.Amount, jt.Currency),
			category: jt.Category,
			memo:     jt.Memo,
		}
		if jt.HomeAmount != nil {
			tx.home = M(*jt.HomeAmount, homeCurrency)
		}
		l.Append(tx)
	}
	return l, nil
}

// EncodeCategories writes the category collection as a pretty-printed JSON array.
func EncodeCategories(w io.Writer, c *Categories) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(c.All())
}

// DecodeCategories reads a JSON array of categories.
func DecodeCategories(r io.Reader) (*Categories, error) {
	var list []Category
	if err := json.NewDecoder(r).Decode(&list); err != nil {
		if err == io.EOF {
			return NewCategories(), nil
		}
		return nil, fmt.Errorf("cannot decode categories: %w", err)
	}
	c := NewCategories()
	for _, cat := range list {
		c.append(cat)
	}
	return c, nil
}
