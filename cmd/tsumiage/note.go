// ABOUTME: CLI command for per-item daily notes.
// ABOUTME: With text it upserts the note, without it shows the stored one.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
)

var noteDay string

var noteCmd = &cobra.Command{
	Use:   "note <item> [text...]",
	Short: "Show or set the note for one item-day",
	Long: `Show or set the daily note attached to one item-day.

Each item-day holds at most one note; setting it again replaces the
text. An empty string clears it.

Examples:
  tsumiage note 勉強                        # Show today's note
  tsumiage note 勉強 集中できた             # Set today's note
  tsumiage note 勉強 "" --day 2026-08-29    # Clear a past note`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}

		day, err := parseDay(noteDay)
		if err != nil {
			return err
		}
		if day == "" {
			day = trk.Today()
		}

		// No text: show
		if len(args) == 1 {
			note, err := trk.DailyNote(item.ID, day)
			if err != nil {
				return fmt.Errorf("failed to load note: %w", err)
			}
			if note == nil || note.Text == "" {
				fmt.Printf("No note for %q on %s.\n", item.Name, models.FormatDate(day))
				return nil
			}
			fmt.Println(note.Text)
			return nil
		}

		text := strings.Join(args[1:], " ")
		if err := trk.SetDailyNote(item.ID, day, text); err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}

		if text == "" {
			color.Green("✓ Cleared note for %q on %s", item.Name, models.FormatDate(day))
		} else {
			color.Green("✓ Note saved for %q on %s", item.Name, models.FormatDate(day))
		}
		return nil
	},
}

func init() {
	noteCmd.Flags().StringVar(&noteDay, "day", "", "logical day (YYYY-MM-DD), defaults to today")
	rootCmd.AddCommand(noteCmd)
}
