package cmd

import (
	"context"
	"flag"
	"testing"

	ledger "github.com/dmelo/ledger"
	"github.com/google/subcommands"
)

func TestCommandsAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Commands {
		if c.Name() == "" || c.Synopsis() == "" || c.Usage() == "" {
			t.Errorf("command %q misses a name, synopsis or usage", c.Name())
		}
		if seen[c.Name()] {
			t.Errorf("command name %q registered twice", c.Name())
		}
		seen[c.Name()] = true
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("FIN_TEST_VAR", "set")
	if got := envOr("FIN_TEST_VAR", "fallback"); got != "set" {
		t.Errorf("envOr() = %q, want %q", got, "set")
	}
	if got := envOr("FIN_TEST_VAR_UNSET", "fallback"); got != "fallback" {
		t.Errorf("envOr() = %q, want %q", got, "fallback")
	}
}

// run executes a command against a temporary data directory.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parsing flags: %v", err)
	}
	return c.Execute(context.Background(), f)
}

func TestIncomeThenExpense(t *testing.T) {
	*dataDir = t.TempDir()

	// Home currency amounts need no rate, so no network is involved.
	income := &incomeCmd{addCmd{kind: ledger.Income}}
	if got := run(t, income, "1000", "salary"); got != subcommands.ExitSuccess {
		t.Fatalf("income exited with %v", got)
	}
	expense := &expenseCmd{addCmd{kind: ledger.Expense}}
	if got := run(t, expense, "-cat", "Food", "250", "groceries"); got != subcommands.ExitSuccess {
		t.Fatalf("expense exited with %v", got)
	}
	// Over the floor: rejected and not recorded.
	expense = &expenseCmd{addCmd{kind: ledger.Expense}}
	if got := run(t, expense, "900"); got != subcommands.ExitFailure {
		t.Fatalf("overdraft expense exited with %v, want failure", got)
	}

	l := ledger.LoadLedger(*dataDir, *homeCurrency)
	if l.Len() != 2 {
		t.Fatalf("ledger has %d transactions, want 2", l.Len())
	}
	if got := l.Balance().Amount().String(); got != "750" {
		t.Errorf("Balance() = %s, want 750", got)
	}
}

func TestExpenseUnknownCategory(t *testing.T) {
	*dataDir = t.TempDir()

	expense := &expenseCmd{addCmd{kind: ledger.Expense}}
	if got := run(t, expense, "-cat", "Nope", "10"); got != subcommands.ExitFailure {
		t.Fatalf("expense with unknown category exited with %v, want failure", got)
	}
	if l := ledger.LoadLedger(*dataDir, *homeCurrency); l.Len() != 0 {
		t.Errorf("ledger has %d transactions, want 0", l.Len())
	}
}

func TestCategoriesLifecycle(t *testing.T) {
	*dataDir = t.TempDir()

	if got := run(t, &categoriesCmd{}, "-add", "Rent", "-color", "#9C27B0"); got != subcommands.ExitSuccess {
		t.Fatalf("categories -add exited with %v", got)
	}
	cats := ledger.LoadCategories(*dataDir)
	rent, ok := cats.FindByName("Rent")
	if !ok || rent.Color != "#9C27B0" {
		t.Fatalf("FindByName(Rent) = %+v, %v", rent, ok)
	}

	if got := run(t, &categoriesCmd{}, "-rename", "Rent=Housing"); got != subcommands.ExitSuccess {
		t.Fatalf("categories -rename exited with %v", got)
	}
	if got := run(t, &categoriesCmd{}, "-rm", "Housing"); got != subcommands.ExitSuccess {
		t.Fatalf("categories -rm exited with %v", got)
	}
	cats = ledger.LoadCategories(*dataDir)
	if _, ok := cats.FindByName("Housing"); ok {
		t.Error("Housing should be deleted")
	}
}

func TestFutureDateNeedsForce(t *testing.T) {
	*dataDir = t.TempDir()

	income := &incomeCmd{addCmd{kind: ledger.Income}}
	if got := run(t, income, "-d", "2999-01-01", "10"); got != subcommands.ExitUsageError {
		t.Fatalf("future income exited with %v, want usage error", got)
	}
	income = &incomeCmd{addCmd{kind: ledger.Income}}
	if got := run(t, income, "-d", "2999-01-01", "-force", "10"); got != subcommands.ExitSuccess {
		t.Fatalf("forced future income exited with %v", got)
	}
}
