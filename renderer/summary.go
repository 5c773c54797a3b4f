package renderer

import (
	"fmt"
	"io"
	"sort"
	"strings"

	ledger "github.com/dmelo/ledger"
)

// CategoryTotal is one line of the expense breakdown.
type CategoryTotal struct {
	Name  string
	Total ledger.Money
}

// Summary is the data behind the dashboard view.
type Summary struct {
	HomeCurrency string
	Balance      ledger.Money
	Income       ledger.Money
	Expenses     ledger.Money
	ByCategory   []CategoryTotal
	Recent       []Row
}

// NewSummary gathers the dashboard figures: overall balance, totals by kind,
// the expense breakdown by category and the n most recent transactions.
func NewSummary(as *ledger.AccountingSystem, n int) *Summary {
	s := &Summary{
		HomeCurrency: as.HomeCurrency,
		Balance:      as.Ledger.Balance(),
		Income:       as.Ledger.TotalByKind(ledger.Income),
		Expenses:     as.Ledger.TotalByKind(ledger.Expense),
	}

	totals := as.Ledger.TotalsByCategory(ledger.Expense, as.Categories)
	for name, total := range totals {
		s.ByCategory = append(s.ByCategory, CategoryTotal{Name: name, Total: total})
	}
	// Largest bucket first, name as tie break so the output is stable.
	sort.Slice(s.ByCategory, func(i, j int) bool {
		a, b := s.ByCategory[i], s.ByCategory[j]
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Name < b.Name
	})

	for _, tx := range as.Ledger.Recent(n) {
		contribution := tx.BalanceContribution()
		s.Recent = append(s.Recent, Row{
			Date:     tx.When().String(),
			Kind:     tx.Kind().String(),
			Category: categoryName(as.Categories, tx.CategoryID()),
			Memo:     tx.Memo(),
			Amount:   contribution.Amount(),
			Display:  contribution.SignedString(),
		})
	}
	return s
}

// Markdown renders the dashboard as a markdown document.
func (s *Summary) Markdown() string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n\n")
	fmt.Fprintf(&b, "Balance: **%s**\n\n", s.Balance.SignedString())
	fmt.Fprintf(&b, "| | Total |\n|:---|---:|\n")
	fmt.Fprintf(&b, "| Income | %s |\n", s.Income)
	fmt.Fprintf(&b, "| Expenses | %s |\n\n", s.Expenses)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Expenses by Category\n\n")
		fmt.Fprintf(w, "| Category | Total |\n|:---|---:|\n")
		for _, ct := range s.ByCategory {
			fmt.Fprintf(w, "| %s | %s |\n", ct.Name, ct.Total)
		}
		fmt.Fprintf(w, "\n")
		return len(s.ByCategory) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "## Recent Transactions\n\n")
		fmt.Fprintf(w, "| Date | Kind | Category | Amount | Memo |\n|:---|:---|:---|---:|:---|\n")
		for _, r := range s.Recent {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n", r.Date, r.Kind, r.Category, r.Display, r.Memo)
		}
		return len(s.Recent) > 0
	})
	return b.String()
}
