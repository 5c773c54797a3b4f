package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	ledger "github.com/dmelo/ledger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type convertCmd struct {
	from string
	to   string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert an amount between currencies" }
func (*convertCmd) Usage() string {
	return `fin convert [-from <currency>] [-to <currency>] <amount>

  Converts an amount at the live rate without recording anything.

Usage Examples:
# How much is 100 USD at home?
$ fin convert -from USD 100

`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Source currency.")
	f.StringVar(&c.to, "to", "", "Target currency. Defaults to the home currency.")
}

func (c *convertCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	from := strings.ToUpper(c.from)
	to := strings.ToUpper(c.to)
	if from == "" {
		from = as.HomeCurrency
	}
	if to == "" {
		to = as.HomeCurrency
	}
	for _, cur := range []string{from, to} {
		if err := ledger.ValidateCurrency(cur); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	converted, err := as.Rates.Convert(ctx, amount, from, to)
	if err != nil {
		if errors.Is(err, ledger.ErrRateUnavailable) {
			fmt.Fprintf(os.Stderr, "Error: %v\nThe rate service may be down, try again later.\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}
	fmt.Printf("%s %s = %s %s\n", amount, from, converted.Round(2), to)
	return subcommands.ExitSuccess
}
