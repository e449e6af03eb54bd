// ABOUTME: CLI command summarizing totals, levels, streak and history.
// ABOUTME: Optionally shows per-day history for a single item.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/quotes"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats [item]",
	Short: "Show totals, levels and the current streak",
	Long: `Show overall statistics: per-item totals with levels, today's
values, and the consecutive-day streak across all items.

With an item argument, also prints that item's recent per-day history.

Examples:
  tsumiage stats
  tsumiage stats 勉強 --days 14`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		streak, err := trk.Streak()
		if err != nil {
			return fmt.Errorf("failed to calculate streak: %w", err)
		}

		q := quotes.ForDay(trk.Today())
		faint := color.New(color.Faint)

		fmt.Printf("🔥 %s\n", color.New(color.Bold).Sprintf("%d日連続", streak))
		fmt.Println(faint.Sprintf("「%s」 — %s", q.Text, q.Author))
		fmt.Println()

		if len(args) == 1 {
			return showItemStats(args[0])
		}

		items, err := trk.Items()
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}
		if len(items) == 0 {
			fmt.Println("No items yet.")
			return nil
		}

		for _, it := range items {
			today, err := trk.TodayValue(it.ID)
			if err != nil {
				return fmt.Errorf("failed to total today: %w", err)
			}
			level := models.LevelInfo(it.Kind, it.TotalValue)

			next := ""
			if level.Next != nil {
				next = faint.Sprintf("  次の称号まで %d%%", level.Progress)
			}
			fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(it.Name), level.Current.Title)
			fmt.Printf("  今日 %s  総計 %s%s\n",
				it.FormatValue(today), it.FormatValue(it.TotalValue), next)
		}
		return nil
	},
}

func showItemStats(nameOrID string) error {
	item, err := trk.FindItem(nameOrID)
	if err != nil {
		return err
	}

	level := models.LevelInfo(item.Kind, item.TotalValue)
	fmt.Printf("%s  %s\n", color.New(color.Bold).Sprint(item.Name), level.Current.Title)
	fmt.Printf("  総計 %s\n", item.FormatValue(item.TotalValue))
	fmt.Println()

	groups, err := trk.GroupByDay(item.ID, statsDays)
	if err != nil {
		return fmt.Errorf("failed to group records: %w", err)
	}
	if len(groups) == 0 {
		fmt.Println("No records yet.")
		return nil
	}

	faint := color.New(color.Faint)
	for _, g := range groups {
		fmt.Printf("  %s  %s %s\n",
			padRight(models.FormatDate(g.Day), 8),
			padRight(item.FormatValue(g.Total), 12),
			faint.Sprintf("(%d件)", g.Count))
	}
	return nil
}

func init() {
	statsCmd.Flags().IntVar(&statsDays, "days", 14, "history days to show for a single item")
	rootCmd.AddCommand(statsCmd)
}
