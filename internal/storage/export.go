// ABOUTME: Export and import of the full data set.
// ABOUTME: Supports JSON, YAML, and CSV (records only) formats.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/skosaka/tsumiage/internal/models"
)

// ExportData is the full export format.
type ExportData struct {
	Version    string              `json:"version" yaml:"version"`
	ExportedAt time.Time           `json:"exported_at" yaml:"exported_at"`
	Tool       string              `json:"tool" yaml:"tool"`
	Items      []*models.Item      `json:"items" yaml:"items"`
	Records    []*models.Record    `json:"records" yaml:"records"`
	Notes      []*models.DailyNote `json:"daily_notes" yaml:"daily_notes"`
}

// GetAllData retrieves everything from the repository for export.
func GetAllData(repo Repository) (*ExportData, error) {
	items, err := repo.LoadItems()
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	records, err := repo.LoadRecords()
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	notes, err := repo.LoadNotes()
	if err != nil {
		return nil, fmt.Errorf("load daily notes: %w", err)
	}
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "tsumiage",
		Items:      items,
		Records:    records,
		Notes:      notes,
	}, nil
}

// ImportData replaces repository contents with the export payload.
func ImportData(repo Repository, data *ExportData) error {
	items := data.Items
	if items == nil {
		items = []*models.Item{}
	}
	records := data.Records
	if records == nil {
		records = []*models.Record{}
	}
	notes := data.Notes
	if notes == nil {
		notes = []*models.DailyNote{}
	}
	if err := repo.SaveAll(items, records, notes); err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	return nil
}

// WriteJSON writes the export payload as indented JSON.
func (e *ExportData) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML writes the export payload as YAML.
func (e *ExportData) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(e); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// WriteCSV writes one row per record with the owning item's name.
func (e *ExportData) WriteCSV(w io.Writer) error {
	names := make(map[string]string, len(e.Items))
	kinds := make(map[string]models.Kind, len(e.Items))
	for _, it := range e.Items {
		names[it.ID] = it.Name
		kinds[it.ID] = it.Kind
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"ID", "Item", "Kind", "Day", "Value", "Created At", "Note"}); err != nil {
		return err
	}
	for _, r := range e.Records {
		name := names[r.ItemID]
		if name == "" {
			name = r.ItemID
		}
		row := []string{
			r.ID,
			name,
			string(kinds[r.ItemID]),
			r.Day,
			fmt.Sprintf("%d", r.Value),
			r.CreatedAt.Format(time.RFC3339),
			r.Note,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// ReadJSON parses an export payload from JSON.
func ReadJSON(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return &data, nil
}

// ReadYAML parses an export payload from YAML.
func ReadYAML(r io.Reader) (*ExportData, error) {
	var data ExportData
	if err := yaml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &data, nil
}
