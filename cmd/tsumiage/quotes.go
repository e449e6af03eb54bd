// ABOUTME: CLI command listing the daily quotes for recent days.
// ABOUTME: The pick is deterministic, so the history needs no storage.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/quotes"
)

var quotesDays int

var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "Show the daily quotes for recent days",
	Long: `Show the motivational quote of each recent day, today first.

Examples:
  tsumiage quotes
  tsumiage quotes --days 30`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, e := range quotes.History(trk.Today(), quotesDays) {
			fmt.Printf("%s  「%s」 %s\n",
				padRight(models.FormatDate(e.Day), 8),
				e.Quote.Text,
				faint.Sprintf("— %s", e.Quote.Author))
		}
		return nil
	},
}

func init() {
	quotesCmd.Flags().IntVar(&quotesDays, "days", 7, "number of days to list")
	rootCmd.AddCommand(quotesCmd)
}
