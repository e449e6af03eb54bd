// ABOUTME: CLI commands for managing habit items.
// ABOUTME: Covers add, list, rename, delete and reorder.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/models"
)

var (
	itemIcon  string
	itemColor string
)

var itemCmd = &cobra.Command{
	Use:     "item",
	Aliases: []string{"i"},
	Short:   "Manage habit items",
}

var itemAddCmd = &cobra.Command{
	Use:   "add <name> <time|count>",
	Short: "Create a new habit item",
	Long: `Create a new habit item.

The kind is fixed at creation:
  time    measured in seconds (stopwatch, pomodoro, 'log 勉強 30m')
  count   measured in occurrences ('log 腕立て 20')

Examples:
  tsumiage item add 勉強 time
  tsumiage item add 腕立て count --icon check --color "#4CAF50"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		kind, err := models.ParseKind(args[1])
		if err != nil {
			return err
		}

		item, err := trk.AddItem(name, kind, itemIcon, itemColor)
		if err != nil {
			return fmt.Errorf("failed to add item: %w", err)
		}

		color.Green("✓ Added %s item %q", item.Kind, item.Name)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(item.ID[:8]))
		return nil
	},
}

var itemListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List habit items",
	RunE: func(cmd *cobra.Command, args []string) error {
		items, err := trk.Items()
		if err != nil {
			return fmt.Errorf("failed to list items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No items yet. Create one with: tsumiage item add <name> <time|count>")
			return nil
		}

		faint := color.New(color.Faint)
		for _, it := range items {
			today, err := trk.TodayValue(it.ID)
			if err != nil {
				return fmt.Errorf("failed to total today: %w", err)
			}
			level := models.LevelInfo(it.Kind, it.TotalValue)

			goalMark := ""
			if it.Goal != nil {
				p := trk.GoalProgressFor(it)
				goalMark = faint.Sprintf("  goal %d%%", p.Percent)
			}

			fmt.Printf("%s %s %s  今日 %s  総計 %s  %s%s\n",
				faint.Sprint(it.ID[:8]),
				padRight(string(it.Kind), 5),
				padRight(it.Name, 16),
				padRight(it.FormatValue(today), 12),
				padRight(it.FormatValue(it.TotalValue), 12),
				level.Current.Title,
				goalMark)
		}
		return nil
	},
}

var itemRenameCmd = &cobra.Command{
	Use:   "rename <item> <new-name>",
	Short: "Rename a habit item",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}
		if err := trk.RenameItem(item.ID, args[1]); err != nil {
			return fmt.Errorf("failed to rename item: %w", err)
		}
		color.Green("✓ Renamed %q to %q", item.Name, args[1])
		return nil
	},
}

var itemDeleteCmd = &cobra.Command{
	Use:     "delete <item>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit item and all its records",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, err := trk.FindItem(args[0])
		if err != nil {
			return err
		}
		if err := trk.DeleteItem(item.ID); err != nil {
			return fmt.Errorf("failed to delete item: %w", err)
		}
		color.Green("✓ Deleted %q and its records", item.Name)
		return nil
	},
}

var itemReorderCmd = &cobra.Command{
	Use:   "reorder <item> [item...]",
	Short: "Reorder items; listed items move to the front",
	Long: `Reorder items. Items are placed in the order given; any item
not listed keeps its relative position after the listed ones.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := make([]string, 0, len(args))
		for _, arg := range args {
			item, err := trk.FindItem(arg)
			if err != nil {
				return err
			}
			ids = append(ids, item.ID)
		}
		if err := trk.Reorder(ids); err != nil {
			return fmt.Errorf("failed to reorder items: %w", err)
		}
		color.Green("✓ Reordered %d item(s)", len(ids))
		return nil
	},
}

func padRight(s string, length int) string {
	// Width by rune count; CJK double-width is close enough for a terminal list
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}

func init() {
	itemAddCmd.Flags().StringVar(&itemIcon, "icon", models.IconOptions[0], "icon name (clock, hash, check, pencil, house, chart)")
	itemAddCmd.Flags().StringVar(&itemColor, "color", models.ColorOptions[0], "hex color")

	itemCmd.AddCommand(itemAddCmd)
	itemCmd.AddCommand(itemListCmd)
	itemCmd.AddCommand(itemRenameCmd)
	itemCmd.AddCommand(itemDeleteCmd)
	itemCmd.AddCommand(itemReorderCmd)
	rootCmd.AddCommand(itemCmd)
}
