package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmelo/ledger/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	year   int
	month  int
	format string
	output string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "report on one month of transactions" }
func (*reportCmd) Usage() string {
	return `fin report [-year <year>] [-month <month>] [-format md|txt|pdf] [-o <file>]

  Lists every transaction of a month with income, expense and net totals.
  Defaults to the current month, rendered as markdown in the terminal.

Usage Examples:
# Export March 2025 as PDF.
$ fin report -year 2025 -month 3 -format pdf -o march.pdf

`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	now := time.Now()
	f.IntVar(&c.year, "year", now.Year(), "Year of the report.")
	f.IntVar(&c.month, "month", int(now.Month()), "Month of the report, 1 to 12.")
	f.StringVar(&c.format, "format", "md", "Output format: md, txt or pdf.")
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout. Required for pdf.")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.month < 1 || c.month > 12 {
		fmt.Fprintf(os.Stderr, "Error: -month must be 1 to 12, got %d.\n", c.month)
		return subcommands.ExitUsageError
	}

	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	report := renderer.NewMonthly(as.Ledger, as.Categories, c.year, time.Month(c.month), as.HomeCurrency)

	switch c.format {
	case "md":
		printMarkdown(report.Markdown())
	case "txt":
		if c.output == "" {
			fmt.Print(report.TXT())
			break
		}
		if err := os.WriteFile(c.output, []byte(report.TXT()), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.output)
	case "pdf":
		if c.output == "" {
			c.output = fmt.Sprintf("report-%04d-%02d.pdf", c.year, c.month)
		}
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := report.PDF(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Wrote %s\n", c.output)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q, expected md, txt or pdf.\n", c.format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}
