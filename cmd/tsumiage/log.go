// ABOUTME: CLI command for logging progress against an item.
// ABOUTME: Time items take durations or seconds, count items take occurrences.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
)

var (
	logNote string
	logDay  string
)

var logCmd = &cobra.Command{
	Use:     "log <item> <value>",
	Aliases: []string{"add"},
	Short:   "Record progress for an item",
	Long: `Record progress for an item.

For time items the value is a duration ("30m", "1h30m") or a bare
second count. For count items it is a number of occurrences.

The record lands on today's logical day (06:00 cutoff by default)
unless --day overrides it.

Examples:
  tsumiage log 勉強 45m
  tsumiage log 腕立て 20 --note "朝トレ"
  tsumiage log 勉強 1h --day 2026-08-29`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}

		value, err := parseValue(item.Kind, args[1])
		if err != nil {
			return err
		}
		if value <= 0 {
			return fmt.Errorf("value must be positive")
		}

		day, err := parseDay(logDay)
		if err != nil {
			return err
		}

		rec, err := trk.AddRecord(item.ID, value, logNote, day)
		if err != nil {
			return fmt.Errorf("failed to add record: %w", err)
		}

		total, err := trk.TotalForDay(item.ID, rec.Day)
		if err != nil {
			return fmt.Errorf("failed to total day: %w", err)
		}

		color.Green("✓ Logged %s to %q", item.FormatValue(rec.Value), item.Name)
		fmt.Printf("  %s %s: %s\n",
			color.New(color.Faint).Sprint(rec.ID[:8]),
			models.FormatDate(rec.Day),
			item.FormatValue(total))
		return nil
	},
}

func init() {
	logCmd.Flags().StringVar(&logNote, "note", "", "note for the record")
	logCmd.Flags().StringVar(&logDay, "day", "", "logical day (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(logCmd)
}
