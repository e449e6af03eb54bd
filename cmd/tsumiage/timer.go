// ABOUTME: CLI commands for the persistent per-item stopwatch.
// ABOUTME: The stopwatch survives process exit; stop records the elapsed time.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/stopwatch"
)

var timerCmd = &cobra.Command{
	Use:     "timer",
	Aliases: []string{"t"},
	Short:   "Measure time with a persistent stopwatch",
	Long: `Measure time against a time item with a stopwatch.

Only the start instant is persisted, so the stopwatch keeps counting
while the process is gone: start it, close the terminal, come back an
hour later and stop it to record the full hour.

Examples:
  tsumiage timer start 勉強
  tsumiage timer status 勉強
  tsumiage timer stop 勉強`,
}

var timerStartCmd = &cobra.Command{
	Use:   "start <item>",
	Short: "Start the stopwatch for an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := findDurationItem(args[0])
		if err != nil {
			return err
		}

		sw := stopwatch.New(trk, item.ID)
		running, err := sw.Running()
		if err != nil {
			return fmt.Errorf("failed to check stopwatch: %w", err)
		}
		if running {
			elapsed, _ := sw.Elapsed()
			fmt.Printf("Stopwatch for %q is already running (%s).\n",
				item.Name, models.FormatTime(int64(elapsed.Seconds())))
			return nil
		}

		if err := sw.Start(); err != nil {
			return fmt.Errorf("failed to start stopwatch: %w", err)
		}
		color.Green("✓ Stopwatch started for %q", item.Name)
		return nil
	},
}

var timerStopCmd = &cobra.Command{
	Use:   "stop <item>",
	Short: "Stop the stopwatch and record the elapsed time",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := findDurationItem(args[0])
		if err != nil {
			return err
		}

		sw := stopwatch.New(trk, item.ID)
		running, err := sw.Running()
		if err != nil {
			return fmt.Errorf("failed to check stopwatch: %w", err)
		}
		if !running {
			fmt.Printf("No stopwatch running for %q.\n", item.Name)
			return nil
		}

		rec, err := sw.Stop()
		if err != nil {
			return fmt.Errorf("failed to stop stopwatch: %w", err)
		}
		if rec == nil {
			fmt.Println("Nothing to record.")
			return nil
		}

		total, err := trk.TotalForDay(item.ID, rec.Day)
		if err != nil {
			return fmt.Errorf("failed to total day: %w", err)
		}

		color.Green("✓ Recorded %s to %q", models.FormatTime(rec.Value), item.Name)
		fmt.Printf("  %s: %s\n", models.FormatDate(rec.Day), item.FormatValue(total))
		return nil
	},
}

var timerStatusCmd = &cobra.Command{
	Use:   "status [item]",
	Short: "Show running stopwatches",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var items []*models.Item
		if len(args) == 1 {
			item, err := findDurationItem(args[0])
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
				if it.Kind == models.KindDuration {
					items = append(items, it)
				}
			}
		}

		found := false
		for _, it := range items {
			sw := stopwatch.New(trk, it.ID)
			running, err := sw.Running()
			if err != nil {
				return fmt.Errorf("failed to check stopwatch: %w", err)
			}
			if !running {
				continue
			}
			elapsed, err := sw.Elapsed()
			if err != nil {
				return fmt.Errorf("failed to read stopwatch: %w", err)
			}
			found = true
			fmt.Printf("● %s  %s\n", it.Name,
				color.GreenString(models.FormatTimeDetailed(int64(elapsed.Seconds()))))
		}

		if !found {
			fmt.Println("No stopwatch running.")
		}
		return nil
	},
}

func findDurationItem(nameOrID string) (*models.Item, error) {
	item, err := trk.FindItem(nameOrID)
	if err != nil {
		return nil, err
	}
	if item.Kind != models.KindDuration {
		return nil, fmt.Errorf("%q is a count item; the stopwatch only works with time items", item.Name)
	}
	return item, nil
}

func init() {
	timerCmd.AddCommand(timerStartCmd)
	timerCmd.AddCommand(timerStopCmd)
	timerCmd.AddCommand(timerStatusCmd)
	rootCmd.AddCommand(timerCmd)
}
