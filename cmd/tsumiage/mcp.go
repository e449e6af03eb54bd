// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "tsumiage": {
        "command": "tsumiage",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_item         Create a habit item
  list_items       List items with totals and levels
  delete_item      Delete an item and its records
  add_progress     Record progress for an item
  adjust_progress  Adjust a day's total up or down
  get_progress     Goal progress for an item
  set_goal         Set an item's goal
  get_streak       Consecutive-day streak
  get_history      Per-day totals for an item
  set_daily_note   Attach a note to one item-day
  get_quote        Today's motivational quote

AVAILABLE RESOURCES:

  tsumiage://today     Today's value per item plus the streak
  tsumiage://items     All items with totals and goal state
  tsumiage://summary   Dashboard with streak, levels and quote`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(trk)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
