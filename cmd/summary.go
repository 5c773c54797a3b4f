package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dmelo/ledger/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	recent int
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the financial dashboard" }
func (*summaryCmd) Usage() string {
	return `fin summary [-n <count>]

  Displays the balance, income and expense totals, expenses by category
  and the most recent transactions.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.recent, "n", 15, "Number of recent transactions to include.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.NewSummary(as, c.recent).Markdown())
	return subcommands.ExitSuccess
}
