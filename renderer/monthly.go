package renderer

import (
	"fmt"
	"io"
	"strings"
	"time"

	ledger "github.com/dmelo/ledger"
	"github.com/shopspring/decimal"
)

// Row is one transaction line of a report, already converted to display form.
type Row struct {
	Date     string
	Kind     string
	Category string
	Memo     string
	// Signed home currency value, negative for expenses. Rows predating the
	// conversion feature carry their original amount instead.
	Amount  decimal.Decimal
	Display string
}

// Monthly is the data behind a one month report.
type Monthly struct {
	Year         int
	Month        time.Month
	HomeCurrency string
	Rows         []Row
	Income       ledger.Money
	Expenses     ledger.Money
	Net          ledger.Money
}

// NewMonthly gathers all transactions of the given month into a report.
func NewMonthly(l *ledger.Ledger, cats *ledger.Categories, year int, month time.Month, homeCurrency string) *Monthly {
	m := &Monthly{Year: year, Month: month, HomeCurrency: homeCurrency}
	for tx := range l.Transactions(ledger.InMonth(year, month)) {
		contribution := tx.BalanceContribution()
		m.Net = m.Net.Add(contribution)
		switch tx.Kind() {
		case ledger.Income:
			m.Income = m.Income.Add(contribution.Abs())
		case ledger.Expense:
			m.Expenses = m.Expenses.Add(contribution.Abs())
		}
		m.Rows = append(m.Rows, Row{
			Date:     tx.When().String(),
			Kind:     tx.Kind().String(),
			Category: categoryName(cats, tx.CategoryID()),
			Memo:     tx.Memo(),
			Amount:   contribution.Amount(),
			Display:  contribution.SignedString(),
		})
	}
	return m
}

// Title returns the report heading, e.g. "March 2025".
func (m *Monthly) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

// Markdown renders the report as a markdown document.
func (m *Monthly) Markdown() string {
	return renderTemplate("monthly.md", m)
}

// TXT renders the report in the plain text export format, one line per
// transaction: date, category, signed home amount and memo separated by
// pipes.
func (m *Monthly) TXT() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monthly report %04d-%02d\n\n", m.Year, m.Month)
	for _, r := range m.Rows {
		fmt.Fprintf(&b, "%s | %s | %s %s | %s\n", r.Date, r.Category, r.Amount.StringFixed(2), m.HomeCurrency, r.Memo)
	}
	fmt.Fprintf(&b, "\nIncome:   %s\n", m.Income)
	fmt.Fprintf(&b, "Expenses: %s\n", m.Expenses)
	fmt.Fprintf(&b, "Net:      %s\n", m.Net.SignedString())
	return b.String()
}

// PDF writes the report as a single page PDF document.
func (m *Monthly) PDF(w io.Writer) error {
	lines := strings.Split(strings.TrimRight(m.TXT(), "\n"), "\n")
	return writePDF(w, lines)
}

// categoryName resolves a category reference for display. Dangling and
// absent references fold into the uncategorized bucket.
func categoryName(cats *ledger.Categories, id string) string {
	if cat, ok := cats.Find(id); ok {
		return cat.Name
	}
	return ledger.Uncategorized
}
