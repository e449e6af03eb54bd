// ABOUTME: CLI command for manually adjusting a day's total.
// ABOUTME: Inserts a compensating record; day totals never go negative.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/tracker"
)

var adjustDay string

var adjustCmd = &cobra.Command{
	Use:   "adjust <item> <plus|minus> <amount>",
	Short: "Manually adjust a day's total",
	Long: `Manually adjust a day's total up or down.

The adjustment is stored as an extra record, never by editing
existing ones. Minus adjustments are clamped so the day's total
cannot go below zero.

Examples:
  tsumiage adjust 勉強 plus 10m
  tsumiage adjust 腕立て minus 5 --day 2026-08-29`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}

		dir := tracker.Direction(args[1])
		if dir != tracker.Plus && dir != tracker.Minus {
			return fmt.Errorf("direction must be plus or minus, got %q", args[1])
		}

		amount, err := parseValue(item.Kind, args[2])
		if err != nil {
			return err
		}

		day, err := parseDay(adjustDay)
		if err != nil {
			return err
		}
		if day == "" {
			day = trk.Today()
		}

		rec, err := trk.Adjust(item.ID, day, dir, amount)
		if err != nil {
			return fmt.Errorf("failed to adjust: %w", err)
		}

		total, err := trk.TotalForDay(item.ID, day)
		if err != nil {
			return fmt.Errorf("failed to total day: %w", err)
		}

		if rec == nil {
			fmt.Println("No adjustment needed.")
			return nil
		}

		color.Green("✓ Adjusted %q", item.Name)
		fmt.Printf("  %s: %s\n", models.FormatDate(day), item.FormatValue(total))
		return nil
	},
}

func init() {
	adjustCmd.Flags().StringVar(&adjustDay, "day", "", "logical day (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(adjustCmd)
}
