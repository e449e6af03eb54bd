// ABOUTME: CLI commands for item goals with snapshot-based progress.
// ABOUTME: Covers goal set, clear and show.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage item goals",
}

var goalSetCmd = &cobra.Command{
	Use:   "set <item> <target> <deadline>",
	Short: "Set an item's goal",
	Long: `Set an item's goal: a target amount and a deadline.

Progress counts from the moment the goal is set, not from the item's
historical total. Setting a new goal resets that snapshot.

Examples:
  tsumiage goal set 勉強 100h 2026-12-31
  tsumiage goal set 腕立て 1000 2026-10-01`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}

		target, err := parseValue(item.Kind, args[1])
		if err != nil {
			return err
		}
		if target <= 0 {
			return fmt.Errorf("target must be positive")
		}

		deadline, err := parseDay(args[2])
		if err != nil {
			return err
		}

		if err := trk.SetGoal(item.ID, target, deadline); err != nil {
			return fmt.Errorf("failed to set goal: %w", err)
		}

		color.Green("✓ Goal set for %q", item.Name)
		fmt.Printf("  %s by %s\n", item.FormatValue(target), models.FormatDate(deadline))
		return nil
	},
}

var goalClearCmd = &cobra.Command{
	Use:   "clear <item>",
	Short: "Remove an item's goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}
		if err := trk.ClearGoal(item.ID); err != nil {
			return fmt.Errorf("failed to clear goal: %w", err)
		}
		color.Green("✓ Cleared goal for %q", item.Name)
		return nil
	},
}

var goalShowCmd = &cobra.Command{
	Use:   "show [item]",
	Short: "Show goal progress",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var items []*models.Item
		if len(args) == 1 {
			item, err := trk.FindItem(args[0])
			if err != nil {
				return err
			}
			items = append(items, item)
		} else {
			all, err := trk.Items()
			if err != nil {
				return fmt.Errorf("failed to list items: %w", err)
			}
			for _, it := range all {
				if it.Goal != nil {
					items = append(items, it)
				}
			}
		}

		if len(items) == 0 {
			fmt.Println("No goals set. Create one with: tsumiage goal set <item> <target> <deadline>")
			return nil
		}

		faint := color.New(color.Faint)
		for _, it := range items {
			if it.Goal == nil {
				fmt.Printf("%s: no goal set\n", it.Name)
				continue
			}
			p := trk.GoalProgressFor(it)

			bar := renderBar(p.Percent, 24)
			fmt.Printf("%s  %s %d%%\n", color.New(color.Bold).Sprint(it.Name), bar, p.Percent)
			fmt.Printf("  目標   %s (%sまで)\n", it.FormatValue(it.Goal.Target), models.FormatDate(it.Goal.Deadline))
			fmt.Printf("  達成   %s  残り %s\n", it.FormatValue(p.ProgressValue), it.FormatValue(p.Remaining))
			fmt.Printf("  %s\n", faint.Sprintf("残り%d日 → 1日あたり %s", p.DaysRemaining, it.FormatValue(p.TodayTarget)))
		}
		return nil
	},
}

func renderBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return color.GreenString("%s", repeatRune('█', filled)) +
		color.New(color.Faint).Sprint(repeatRune('░', width-filled))
}

func repeatRune(r rune, n int) string {
	if n < 0 {
		n = 0
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}

func init() {
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalClearCmd)
	goalCmd.AddCommand(goalShowCmd)
	rootCmd.AddCommand(goalCmd)
}
