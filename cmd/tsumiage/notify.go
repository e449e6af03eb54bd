// ABOUTME: CLI commands for the daily reminder notification.
// ABOUTME: Uses the log scheduler; real delivery needs a platform scheduler.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/notify"
	"github.com/skosaka/tsumiage/internal/storage"
)

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Manage the daily reminder",
	Long: `Manage the daily reminder notification.

The reminder fires once per day at the configured time (default 20:00)
with a nudge to stack something.

Examples:
  tsumiage notify on
  tsumiage notify on 21:30
  tsumiage notify off
  tsumiage notify status`,
}

func notifyManager() *notify.Manager {
	return notify.NewManager(repo, &notify.LogScheduler{W: os.Stderr})
}

var notifyOnCmd = &cobra.Command{
	Use:   "on [HH:MM]",
	Short: "Enable the daily reminder",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr := notifyManager()

		timeStr := storage.DefaultNotificationSettings.Time
		if settings, err := mgr.Settings(); err == nil && settings.Time != "" {
			timeStr = settings.Time
		}
		if len(args) == 1 {
			timeStr = args[0]
		}

		granted, err := mgr.Enable(timeStr)
		if err != nil {
			return fmt.Errorf("failed to enable reminder: %w", err)
		}
		if !granted {
			color.Yellow("Notification permission denied; reminder stays off.")
			return nil
		}

		color.Green("✓ Daily reminder on at %s", timeStr)
		return nil
	},
}

var notifyOffCmd = &cobra.Command{
	Use:   "off",
	Short: "Disable the daily reminder",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := notifyManager().Disable(); err != nil {
			return fmt.Errorf("failed to disable reminder: %w", err)
		}
		color.Green("✓ Daily reminder off")
		return nil
	},
}

var notifyStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the reminder setting",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := notifyManager().Settings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		if settings.Enabled {
			fmt.Printf("Daily reminder: %s at %s\n", color.GreenString("on"), settings.Time)
		} else {
			fmt.Printf("Daily reminder: %s\n", color.New(color.Faint).Sprint("off"))
		}
		return nil
	},
}

func init() {
	notifyCmd.AddCommand(notifyOnCmd)
	notifyCmd.AddCommand(notifyOffCmd)
	notifyCmd.AddCommand(notifyStatusCmd)
	rootCmd.AddCommand(notifyCmd)
}
