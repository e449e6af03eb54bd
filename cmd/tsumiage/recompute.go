// ABOUTME: Maintenance command rebuilding item totals from records.
// ABOUTME: For datasets touched by older versions or hand-edited imports.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuild item totals from their records",
	Long: `Rebuild every item's running total from its records.

Totals are maintained incrementally and should never drift; run this
after importing hand-edited data or if a listing looks wrong.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := trk.RecomputeTotals(); err != nil {
			return fmt.Errorf("failed to recompute totals: %w", err)
		}
		color.Green("✓ Totals recomputed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recomputeCmd)
}
