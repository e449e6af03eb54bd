// ABOUTME: Root Cobra command for the tsumiage CLI.
// ABOUTME: Opens storage via PersistentPreRunE and closes it after each run.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/config"
	"github.com/skosaka/tsumiage/internal/storage"
	"github.com/skosaka/tsumiage/internal/tracker"
)

var (
	cfg  *config.Config
	repo storage.Repository
	trk  *tracker.Tracker
)

var rootCmd = &cobra.Command{
	Use:   "tsumiage",
	Short: "積み上げ — stacking habit tracker",
	Long: `Tsumiage is a CLI + TUI tool for tracking "stacking" habits:
things you accumulate a little of every day.

ITEM KINDS:

  time    tracked in seconds with a stopwatch (study, reading, coding)
  count   tracked in occurrences (pushups, pages, glasses of water)

A logical day runs from 06:00 to 06:00 by default, so work past
midnight still lands on the day you stayed up for.

QUICK START:

  $ tsumiage item add 勉強 time             # Create a time item
  $ tsumiage item add 腕立て count          # Create a count item
  $ tsumiage log 勉強 30m                   # Log 30 minutes
  $ tsumiage log 腕立て 20                  # Log 20 occurrences
  $ tsumiage stats                          # Totals, levels, streak
  $ tsumiage tui                            # Full-screen interface

STOPWATCH:

  $ tsumiage timer start 勉強     # Start measuring (survives exit)
  $ tsumiage timer status 勉強    # Peek at the running time
  $ tsumiage timer stop 勉強      # Stop and record the elapsed time

GOALS AND STREAKS:

  $ tsumiage goal set 勉強 100h 2026-12-31  # Target with a deadline
  $ tsumiage goal show                      # Progress toward all goals
  $ tsumiage calendar                       # Month grid of recorded days

MCP INTEGRATION:

  Run 'tsumiage mcp' to start the Model Context Protocol server for
  use with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "tsumiage": { "command": "tsumiage", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives in ~/.local/share/tsumiage (badger KV by default, sqlite
  with 'backend: "sqlite"' in ~/.config/tsumiage/config.json).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch storage
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		trk = tracker.New(repo, tracker.WithCutoffHour(cfg.GetCutoffHour()))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			return repo.Close()
		}
		return nil
	},
}
