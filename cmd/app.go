// Package cmd implements the CLI application to manage a personal ledger.
package cmd

import (
	"flag"
	"os"

	ledger "github.com/dmelo/ledger"
	"github.com/dmelo/ledger/awesome"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{addCmd{kind: ledger.Income}},
	&expenseCmd{addCmd{kind: ledger.Expense}},
	&txCmd{},
	&rmCmd{},
	&categoriesCmd{},
	&summaryCmd{},
	&reportCmd{},
	&convertCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables.

var dataDir = flag.String("data", envOr("FIN_DATA_DIR", ".fin"), "Path to the data directory")
var homeCurrency = flag.String("home", envOr("FIN_HOME_CURRENCY", ledger.DefaultHomeCurrency), "Home currency transactions are converted to")

func envOr(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

// openSystem loads the accounting state from the data directory and wires
// the live rate source behind a fresh cache.
func openSystem() (*ledger.AccountingSystem, error) {
	l := ledger.LoadLedger(*dataDir, *homeCurrency)
	cats := ledger.LoadCategories(*dataDir)
	rates := ledger.NewConverter(ledger.NewRateCache(), awesome.NewClient())
	return ledger.NewAccountingSystem(l, cats, rates, *homeCurrency)
}

// saveSystem persists the accounting state back to the data directory.
func saveSystem(as *ledger.AccountingSystem) error {
	if err := ledger.SaveLedger(*dataDir, as.Ledger); err != nil {
		return err
	}
	return ledger.SaveCategories(*dataDir, as.Categories)
}
