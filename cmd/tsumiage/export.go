// ABOUTME: CLI commands for exporting and importing the full dataset.
// ABOUTME: JSON and YAML round-trip; CSV is a one-way record dump.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skosaka/tsumiage/internal/storage"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data",
	Long: `Export all items, records and daily notes.

Formats:
  json    full dataset, re-importable (default)
  yaml    full dataset, re-importable
  csv     flat record dump for spreadsheets (not re-importable)

Examples:
  tsumiage export > backup.json
  tsumiage export --format yaml -o backup.yaml
  tsumiage export --format csv -o records.csv`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := storage.GetAllData(repo)
		if err != nil {
			return fmt.Errorf("failed to collect data: %w", err)
		}

		out := os.Stdout
		if exportOutput != "" {
			f, err := os.Create(exportOutput)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		switch exportFormat {
		case "json":
			err = data.WriteJSON(out)
		case "yaml", "yml":
			err = data.WriteYAML(out)
		case "csv":
			err = data.WriteCSV(out)
		default:
			return fmt.Errorf("unknown format: %s (want json, yaml or csv)", exportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput != "" {
			color.Green("✓ Exported %d item(s), %d record(s) to %s",
				len(data.Items), len(data.Records), exportOutput)
		}
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import data from a JSON or YAML export",
	Long: `Import a previous export, replacing ALL current data.

The format is picked from the file extension (.json, .yaml, .yml).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		var data *storage.ExportData
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".json":
			data, err = storage.ReadJSON(f)
		case ".yaml", ".yml":
			data, err = storage.ReadYAML(f)
		default:
			return fmt.Errorf("unknown file extension: %s (want .json, .yaml or .yml)", filepath.Ext(args[0]))
		}
		if err != nil {
			return fmt.Errorf("failed to parse file: %w", err)
		}

		if err := storage.ImportData(repo, data); err != nil {
			return fmt.Errorf("failed to import: %w", err)
		}

		// Rebuild totals in case the export predates a manual edit
		if err := trk.RecomputeTotals(); err != nil {
			return fmt.Errorf("failed to recompute totals: %w", err)
		}

		color.Green("✓ Imported %d item(s), %d record(s), %d note(s)",
			len(data.Items), len(data.Records), len(data.Notes))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "export format (json, yaml, csv)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
