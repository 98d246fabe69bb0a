package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/trifactor/internal/catalog"
)

var lensCmd = &cobra.Command{
	Use:   "lens",
	Short: "Browse the question catalog",
}

var lensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List lenses with question counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		cat := catalog.Default()

		fmt.Fprintf(out, "%-14s  %-14s  %5s", "ID", "Name", "Total")
		for _, c := range catalog.AllCategories() {
			fmt.Fprintf(out, "  %10s", c)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, strings.Repeat("─", 38+12*len(catalog.AllCategories())))

		for _, l := range cat.Lenses() {
			fmt.Fprintf(out, "%-14s  %-14s  %5d", l, l.DisplayName(), cat.Size(l))
			for _, c := range catalog.AllCategories() {
				fmt.Fprintf(out, "  %10d", len(cat.ByCategory(l, c)))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var lensShowCmd = &cobra.Command{
	Use:   "show <lens>",
	Short: "Show the categories and questions of a lens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lens, err := catalog.ParseLens(args[0])
		if err != nil {
			return err
		}
		var only []catalog.Category
		if name, _ := cmd.Flags().GetString("category"); name != "" {
			c, err := catalog.ParseCategory(name)
			if err != nil {
				return err
			}
			only = []catalog.Category{c}
		} else {
			only = catalog.AllCategories()
		}

		out := cmd.OutOrStdout()
		cat := catalog.Default()
		fmt.Fprintf(out, "%s (%d questions)\n", lens.DisplayName(), cat.Size(lens))
		fmt.Fprintln(out, lens.Intro())

		for _, c := range only {
			qs := cat.ByCategory(lens, c)
			fmt.Fprintf(out, "\n%s: %s (%d)\n", c, catalog.CategoryLabel(lens, c), len(qs))
			for _, q := range qs {
				mark := " "
				if q.Reverse {
					mark = "R"
				}
				fmt.Fprintf(out, "  %-5s %s %4.1f  %s\n", q.ID, mark, q.Weight, q.Text)
			}
		}
		fmt.Fprintln(out, "\nR marks reverse-scored questions.")
		return nil
	},
}

func init() {
	lensShowCmd.Flags().String("category", "", "Only show one category (e.g. Clarity)")

	lensCmd.AddCommand(lensListCmd)
	lensCmd.AddCommand(lensShowCmd)
}
