package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type txCmd struct {
	n int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the most recent transactions" }
func (*txCmd) Usage() string {
	return `fin tx [-n <count>]

  Lists the most recent transactions, latest first.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.n, "n", 15, "Number of transactions to show.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	txs := as.Ledger.Recent(c.n)
	if len(txs) == 0 {
		fmt.Println("No transactions recorded yet.")
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Id | Date | Kind | Category | Amount | Memo |\n")
	b.WriteString("|:---|:---|:---|:---|---:|:---|\n")
	for _, tx := range txs {
		category := ""
		if cat, ok := as.Categories.Find(tx.CategoryID()); ok {
			category = cat.Name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.ID(), tx.When(), tx.Kind(), category, tx.BalanceContribution().SignedString(), tx.Memo())
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

type rmCmd struct{}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "remove a transaction by id" }
func (*rmCmd) Usage() string {
	return `fin rm <id>

  Removes a transaction. Find the id with 'fin tx'.
`
}

func (*rmCmd) SetFlags(f *flag.FlagSet) {}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	id := f.Arg(0)
	if !as.Ledger.Remove(id) {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q.\n", id)
		return subcommands.ExitFailure
	}
	if err := saveSystem(as); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed %s. Balance: %s\n", id, as.Ledger.Balance().SignedString())
	return subcommands.ExitSuccess
}
