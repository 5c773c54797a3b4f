package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ledger "github.com/dmelo/ledger"
	"github.com/dmelo/ledger/date"
	"github.com/shopspring/decimal"
)

// fixture builds a small accounting state with two categories and three
// transactions, two of them in March 2025.
func fixture(t *testing.T) (*ledger.Ledger, *ledger.Categories) {
	t.Helper()
	cats := ledger.NewCategories()
	food, err := cats.Add("Food", "#FF9800")
	if err != nil {
		t.Fatal(err)
	}

	l := ledger.NewLedger()
	add := func(id string, kind ledger.Kind, day, amount, categoryID, memo string) {
		t.Helper()
		value := decimal.RequireFromString(amount)
		tx, err := ledger.NewTransaction(id, kind, date.MustParse(day), value, "BRL", categoryID, memo)
		if err != nil {
			t.Fatal(err)
		}
		l.Append(tx.WithHome(ledger.M(value, "BRL")))
	}
	add("salary", ledger.Income, "2025-03-01", "5000", "", "salary")
	add("lunch", ledger.Expense, "2025-03-05", "150", food.ID, "lunch")
	add("old", ledger.Expense, "2025-02-10", "99", food.ID, "february")
	return l, cats
}

func TestMonthly_TXT(t *testing.T) {
	l, cats := fixture(t)
	m := NewMonthly(l, cats, 2025, time.March, "BRL")

	got := m.TXT()
	if !strings.HasPrefix(got, "Monthly report 2025-03\n") {
		t.Errorf("TXT() header = %q", strings.SplitN(got, "\n", 2)[0])
	}
	for _, want := range []string{
		"2025-03-01 | uncategorized | 5000.00 BRL | salary",
		"2025-03-05 | Food | -150.00 BRL | lunch",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TXT() missing line %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "february") {
		t.Error("TXT() must not include other months")
	}
}

func TestMonthly_TXTKeepsDecimalPrecision(t *testing.T) {
	cats := ledger.NewCategories()
	l := ledger.NewLedger()
	value := decimal.RequireFromString("33.333")
	tx, err := ledger.NewTransaction("x", ledger.Expense, date.MustParse("2025-03-02"), value, "BRL", "", "thirds")
	if err != nil {
		t.Fatal(err)
	}
	l.Append(tx.WithHome(ledger.M(value, "BRL")))

	got := NewMonthly(l, cats, 2025, time.March, "BRL").TXT()
	if !strings.Contains(got, "| -33.33 BRL |") {
		t.Errorf("TXT() should render amounts with exactly two decimals:\n%s", got)
	}
}

func TestMonthly_Totals(t *testing.T) {
	l, cats := fixture(t)
	m := NewMonthly(l, cats, 2025, time.March, "BRL")

	if !m.Income.Amount().Equal(decimal.NewFromInt(5000)) {
		t.Errorf("Income = %s, want 5000", m.Income.Amount())
	}
	if !m.Expenses.Amount().Equal(decimal.NewFromInt(150)) {
		t.Errorf("Expenses = %s, want 150", m.Expenses.Amount())
	}
	if !m.Net.Amount().Equal(decimal.NewFromInt(4850)) {
		t.Errorf("Net = %s, want 4850", m.Net.Amount())
	}
}

func TestMonthly_Markdown(t *testing.T) {
	l, cats := fixture(t)

	got := NewMonthly(l, cats, 2025, time.March, "BRL").Markdown()
	if !strings.Contains(got, "# Report for March 2025") {
		t.Errorf("Markdown() missing title:\n%s", got)
	}
	if !strings.Contains(got, "| 2025-03-05 | expense | Food |") {
		t.Errorf("Markdown() missing expense row:\n%s", got)
	}

	empty := NewMonthly(l, cats, 2030, time.January, "BRL").Markdown()
	if !strings.Contains(empty, "No transactions recorded") {
		t.Errorf("Markdown() on an empty month:\n%s", empty)
	}
}

func TestMonthly_PDF(t *testing.T) {
	l, cats := fixture(t)

	var buf bytes.Buffer
	if err := NewMonthly(l, cats, 2025, time.March, "BRL").PDF(&buf); err != nil {
		t.Fatalf("PDF() error = %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "%PDF-1.4") {
		t.Errorf("PDF() output starts with %q", out[:min(16, len(out))])
	}
	if !strings.HasSuffix(out, "%%EOF\n") {
		t.Error("PDF() output missing trailer")
	}
	// The content stream is uncompressed, so the report text is visible.
	if !strings.Contains(out, "lunch") {
		t.Error("PDF() content stream missing report text")
	}
}

func TestEscapePDF(t *testing.T) {
	if got := escapePDF(`a (b) \c`); got != `a \(b\) \\c` {
		t.Errorf("escapePDF() = %q", got)
	}
}

func TestSummary_Markdown(t *testing.T) {
	l, cats := fixture(t)
	rates := ledger.NewConverter(ledger.NewRateCache(), nil)
	as, err := ledger.NewAccountingSystem(l, cats, rates, "BRL")
	if err != nil {
		t.Fatal(err)
	}

	s := NewSummary(as, 15)
	if len(s.Recent) != 3 {
		t.Fatalf("Recent has %d rows, want 3", len(s.Recent))
	}
	if s.Recent[0].Memo != "lunch" {
		t.Errorf("Recent[0] = %q, want the latest transaction", s.Recent[0].Memo)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].Name != "Food" {
		t.Errorf("ByCategory = %+v, want a single Food bucket", s.ByCategory)
	}

	got := s.Markdown()
	for _, want := range []string{"# Summary", "Balance:", "## Expenses by Category", "## Recent Transactions"} {
		if !strings.Contains(got, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummary_MarkdownEmpty(t *testing.T) {
	as, err := ledger.NewAccountingSystem(nil, nil, nil, "BRL")
	if err != nil {
		t.Fatal(err)
	}
	got := NewSummary(as, 15).Markdown()
	if strings.Contains(got, "## Recent Transactions") {
		t.Error("Markdown() on an empty ledger must skip the recent section")
	}
	if strings.Contains(got, "## Expenses by Category") {
		t.Error("Markdown() on an empty ledger must skip the category section")
	}
}
