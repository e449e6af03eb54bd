// ABOUTME: CLI commands launching the full-screen Bubble Tea interface.
// ABOUTME: 'pomodoro' opens the same app on the pomodoro tab.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the full-screen interface",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI("")
	},
}

var pomodoroCmd = &cobra.Command{
	Use:     "pomodoro",
	Aliases: []string{"pomo"},
	Short:   "Open the pomodoro timer (25 min work / 5 min break)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI("Pomodoro")
	},
}

func runTUI(view string) error {
	app := tui.NewApp(trk, cfg)
	if view != "" {
		app = app.WithView(view)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(pomodoroCmd)
}
