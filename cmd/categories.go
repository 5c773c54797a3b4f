package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type categoriesCmd struct {
	add    string
	color  string
	rm     string
	rename string
}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list and manage categories" }
func (*categoriesCmd) Usage() string {
	return `fin categories [-add <name> [-color <hex>]] [-rm <name>] [-rename <old>=<new>]

  Without flags, lists the categories. Deleting a category keeps its
  transactions; they show up as uncategorized from then on.

Usage Examples:
# Create a category with a display color.
$ fin categories -add Rent -color "#9C27B0"

`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Create a category with this name.")
	f.StringVar(&c.color, "color", "", "Display color for -add, e.g. #4CAF50.")
	f.StringVar(&c.rm, "rm", "", "Delete the category with this name.")
	f.StringVar(&c.rename, "rename", "", "Rename a category, as old=new.")
}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	as, err := openSystem()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.add != "" {
		cat, err := as.Categories.Add(c.add, c.color)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Created category %q (%s)\n", cat.Name, cat.Color)
		changed = true
	}
	if c.rename != "" {
		old, renamed, ok := strings.Cut(c.rename, "=")
		if !ok {
			fmt.Fprintln(os.Stderr, "Error: -rename expects old=new.")
			return subcommands.ExitUsageError
		}
		cat, found := as.Categories.FindByName(old)
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q.\n", old)
			return subcommands.ExitFailure
		}
		if err := as.Categories.Rename(cat.ID, renamed); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Renamed %q to %q\n", old, renamed)
		changed = true
	}
	if c.rm != "" {
		cat, found := as.Categories.FindByName(c.rm)
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown category %q.\n", c.rm)
			return subcommands.ExitFailure
		}
		as.Categories.Remove(cat.ID)
		fmt.Printf("Deleted category %q. Its transactions are kept as uncategorized.\n", cat.Name)
		changed = true
	}

	if changed {
		if err := saveSystem(as); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	b.WriteString("| Name | Color |\n|:---|:---|\n")
	for _, cat := range as.Categories.All() {
		fmt.Fprintf(&b, "| %s | %s |\n", cat.Name, cat.Color)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
