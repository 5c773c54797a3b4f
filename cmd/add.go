package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	ledger "github.com/dmelo/ledger"
	"github.com/dmelo/ledger/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// addCmd carries the behavior shared by the income and expense commands.
type addCmd struct {
	kind          ledger.Kind
	date          string
	currency      string
	category      string
	rate          string
	force         bool
	allowNegative bool
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the transaction.")
	f.StringVar(&c.currency, "c", "", "Currency of the amount. Defaults to the home currency.")
	f.StringVar(&c.category, "cat", "", "Category name.")
	f.StringVar(&c.rate, "rate", "", "Manual conversion rate, used only if the live rate is unavailable.")
	f.BoolVar(&c.force, "force", false, "Allow a date in the future.")
	if c.kind == ledger.Expense {
		f.BoolVar(&c.allowNegative, "allow-negative", false, "Record the expense even if the balance goes negative.")
	}
}

func (c *addCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing amount argument.")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid amount %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	memo := strings.Join(f.Args()[1:], " ")

	day, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q: %v\n", c.date, err)
		return subcommands.ExitUsageError
	}
	if day.After(date.Today()) && !c.force {
		fmt.Fprintf(os.Stderr, "Error: %s is in the future. Use -force to record it anyway.\n", day)
		return subcommands.ExitUsageError
	}

	var manual decimal.Decimal
	if c.rate != "" {
		manual, err = decimal.NewFromString(c.rate)
		if err != nil || !manual.IsPositive() {
			fmt.Fprintf(os.Stderr, "Error: -rate must be a positive number, got %q.\n", c.rate)
			return subcommands.ExitUsageError
		}
	}

	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	categoryID := ""
	if c.category != "" {
		cat, ok := as.Categories.FindByName(c.category)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q. Run 'fin categories' to list them.\n", c.category)
			return subcommands.ExitFailure
		}
		categoryID = cat.ID
	}

	opts := ledger.CreateOptions{ManualRate: manual, AllowNegative: c.allowNegative}
	tx, err := as.Create(ctx, c.kind, day, amount, strings.ToUpper(c.currency), categoryID, memo, opts)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrConversionRequired):
			fmt.Fprintf(os.Stderr, "Error: %v\nThe live rate is unavailable. Pass -rate to supply one manually.\n", err)
		case errors.Is(err, ledger.ErrInsufficientBalance):
			fmt.Fprintf(os.Stderr, "Error: %v\nUse -allow-negative to record it anyway.\n", err)
		default:
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return subcommands.ExitFailure
	}

	if err := saveSystem(as); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s, %s at home. Balance: %s\n",
		tx.Kind(), tx.Original(), tx.When(), tx.Home(), as.Ledger.Balance().SignedString())
	return subcommands.ExitSuccess
}

type incomeCmd struct{ addCmd }

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income" }
func (*incomeCmd) Usage() string {
	return `fin income [-d <date>] [-c <currency>] [-cat <category>] [-rate <rate>] <amount> [memo...]

  Records an income. Amounts in a foreign currency are converted to the home
  currency at the live rate.

Usage Examples:
# 5000 BRL of salary today.
$ fin income -cat Salary 5000 "monthly salary"

`
}

type expenseCmd struct{ addCmd }

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense" }
func (*expenseCmd) Usage() string {
	return `fin expense [-d <date>] [-c <currency>] [-cat <category>] [-rate <rate>] [-allow-negative] <amount> [memo...]

  Records an expense. The expense is rejected if it would make the balance
  negative, unless -allow-negative is given.

Usage Examples:
# 42.50 USD of groceries, converted at the live rate.
$ fin expense -c USD -cat Food 42.50 "groceries"

`
}
