// ABOUTME: Record operations: logging progress, day totals, grouping, adjustments, notes.
// ABOUTME: Adjustments insert compensating records; stored records are never edited.
package tracker

import (
	"fmt"
	"sort"
	"time"

	"github.com/skosaka/tsumiage/internal/models"
)

// Direction selects the sign of a day-total adjustment.
type Direction string

const (
	Plus  Direction = "plus"
	Minus Direction = "minus"
)

// AddRecord logs progress against an item. The record is stamped with
// the current logical day unless overrideDay is given. The owning
// item's TotalValue is incremented in the same persistence step.
func (t *Tracker) AddRecord(itemID string, value int64, note, overrideDay string) (*models.Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	day := overrideDay
	if day == "" {
		day = t.Today()
	}
	return t.addRecordLocked(itemID, value, note, day)
}

// addRecordLocked appends a record and updates the owning item's
// total. Callers hold t.mu.
func (t *Tracker) addRecordLocked(itemID string, value int64, note, day string) (*models.Record, error) {
	items, err := t.loadItems()
	if err != nil {
		return nil, err
	}
	var item *models.Item
	for _, it := range items {
		if it.ID == itemID {
			item = it
			break
		}
	}
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	records, err := t.loadRecords()
	if err != nil {
		return nil, err
	}

	record := models.NewRecord(itemID, value, day)
	if note != "" {
		record.WithNote(note)
	}
	records = append(records, record)

	item.TotalValue += value
	item.UpdatedAt = t.now()

	if err := t.repo.SaveAll(items, records, nil); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}
	return record, nil
}

// Records returns every record, normalized, in insertion order.
func (t *Tracker) Records() ([]*models.Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadRecords()
}

// RecordsForItem returns an item's records in insertion order.
func (t *Tracker) RecordsForItem(itemID string) ([]*models.Record, error) {
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	var out []*models.Record
	for _, r := range records {
		if r.ItemID == itemID {
			out = append(out, r)
		}
	}
	return out, nil
}

// TotalForDay sums an item's record values on one logical day.
func (t *Tracker) TotalForDay(itemID, day string) (int64, error) {
	records, err := t.RecordsForItem(itemID)
	if err != nil {
		return 0, err
	}
	var total int64
	for _, r := range records {
		if r.Day == day {
			total += r.Value
		}
	}
	return total, nil
}

// TodayValue sums an item's records on the current logical day.
func (t *Tracker) TodayValue(itemID string) (int64, error) {
	return t.TotalForDay(itemID, t.Today())
}

// GroupByDay aggregates an item's records per logical day, most
// recent day first, truncated to limit entries (0 = no limit).
func (t *Tracker) GroupByDay(itemID string, limit int) ([]models.DayGroup, error) {
	records, err := t.RecordsForItem(itemID)
	if err != nil {
		return nil, err
	}
	byDay := make(map[string]*models.DayGroup)
	for _, r := range records {
		g, ok := byDay[r.Day]
		if !ok {
			g = &models.DayGroup{Day: r.Day}
			byDay[r.Day] = g
		}
		g.Count++
		g.Total += r.Value
	}
	groups := make([]models.DayGroup, 0, len(byDay))
	for _, g := range byDay {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Day > groups[j].Day })
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups, nil
}

// Adjust corrects one day's total by inserting a compensating record.
// The delta is clamped so the day's total never goes negative; a
// clamped delta of zero is a no-op returning (nil, nil). The clamp
// and the insert happen under one lock so a concurrent mutation
// cannot invalidate the clamp decision.
func (t *Tracker) Adjust(itemID, day string, dir Direction, magnitude int64) (*models.Record, error) {
	if magnitude < 0 {
		magnitude = 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	records, err := t.loadRecords()
	if err != nil {
		return nil, err
	}
	var dayTotal int64
	for _, r := range records {
		if r.ItemID == itemID && r.Day == day {
			dayTotal += r.Value
		}
	}

	delta := magnitude
	if dir == Minus {
		delta = -magnitude
		if dayTotal+delta < 0 {
			delta = -dayTotal
		}
	}
	if delta == 0 {
		return nil, nil
	}
	note := fmt.Sprintf("%sの記録を手動調整", models.FormatDate(day))
	return t.addRecordLocked(itemID, delta, note, day)
}

// SetDailyNote upserts the free-text note for (item, day).
func (t *Tracker) SetDailyNote(itemID, day, text string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	notes, err := t.repo.LoadNotes()
	if err != nil {
		return err
	}
	for _, n := range notes {
		if n.ItemID == itemID && n.Day == day {
			n.Text = text
			n.UpdatedAt = t.now()
			return t.saveNotes(notes)
		}
	}
	notes = append(notes, models.NewDailyNote(itemID, day, text))
	return t.saveNotes(notes)
}

func (t *Tracker) saveNotes(notes []*models.DailyNote) error {
	if err := t.repo.SaveNotes(notes); err != nil {
		return fmt.Errorf("save daily notes: %w", err)
	}
	return nil
}

// DailyNote returns the note for (item, day), or nil when none exists.
func (t *Tracker) DailyNote(itemID, day string) (*models.DailyNote, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	notes, err := t.repo.LoadNotes()
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		if n.ItemID == itemID && n.Day == day {
			return n, nil
		}
	}
	return nil, nil
}

// RecordedDays returns the set of logical day keys in the given month
// that have at least one record of any item.
func (t *Tracker) RecordedDays(year int, month time.Month) (map[string]bool, error) {
	records, err := t.Records()
	if err != nil {
		return nil, err
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, int(month))
	days := make(map[string]bool)
	for _, r := range records {
		if len(r.Day) == 10 && r.Day[:8] == prefix {
			days[r.Day] = true
		}
	}
	return days, nil
}
