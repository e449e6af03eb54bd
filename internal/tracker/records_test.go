// ABOUTME: Tests for record logging, adjustments, daily notes and
// ABOUTME: per-day aggregation.
package tracker

import (
	"sync"
	"testing"

	"github.com/skosaka/tsumiage/internal/models"
)

func TestAdjustMinusClampsToDayTotal(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "pushups", models.KindCount)
	day := trk.Today()

	if _, err := trk.AddRecord(item.ID, 10, "", ""); err != nil {
		t.Fatal(err)
	}

	rec, err := trk.Adjust(item.ID, day, Minus, 25)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if rec.Value != -10 {
		t.Errorf("compensating value = %d, want -10", rec.Value)
	}

	total, err := trk.TotalForDay(item.ID, day)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("day total after clamp = %d, want 0", total)
	}
}

func TestAdjustZeroDeltaIsNoOp(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "pushups", models.KindCount)
	day := trk.Today()

	// Minus against an empty day clamps to zero
	rec, err := trk.Adjust(item.ID, day, Minus, 5)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if rec != nil {
		t.Errorf("expected nil record, got %+v", rec)
	}

	rec, err = trk.Adjust(item.ID, day, Plus, 0)
	if err != nil || rec != nil {
		t.Errorf("Adjust(+0) = %v, %v, want nil, nil", rec, err)
	}

	records, _ := trk.RecordsForItem(item.ID)
	if len(records) != 0 {
		t.Errorf("no-op adjustments left %d records", len(records))
	}
}

func TestAdjustConcurrentMinusNeverGoesNegative(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "pushups", models.KindCount)
	day := trk.Today()

	if _, err := trk.AddRecord(item.ID, 10, "", ""); err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := trk.Adjust(item.ID, day, Minus, 10); err != nil {
				t.Errorf("Adjust: %v", err)
			}
		}()
	}
	wg.Wait()

	total, err := trk.TotalForDay(item.ID, day)
	if err != nil {
		t.Fatal(err)
	}
	if total != 0 {
		t.Errorf("day total = %d, want 0", total)
	}

	// The item total tracks the record sum through the races too
	got, _ := trk.Item(item.ID)
	records, _ := trk.RecordsForItem(item.ID)
	var sum int64
	for _, r := range records {
		sum += r.Value
	}
	if got.TotalValue != sum || got.TotalValue < 0 {
		t.Errorf("TotalValue = %d, record sum = %d", got.TotalValue, sum)
	}
}

func TestAdjustPlusAnnotates(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "pushups", models.KindCount)

	rec, err := trk.Adjust(item.ID, "2026-08-05", Plus, 3)
	if err != nil {
		t.Fatalf("Adjust: %v", err)
	}
	if rec.Value != 3 || rec.Day != "2026-08-05" {
		t.Errorf("record = %+v", rec)
	}
	if rec.Note != "8月5日の記録を手動調整" {
		t.Errorf("note = %q", rec.Note)
	}

	got, _ := trk.Item(item.ID)
	if got.TotalValue != 3 {
		t.Errorf("TotalValue = %d, want 3", got.TotalValue)
	}
}

func TestGroupByDay(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "study", models.KindDuration)

	for _, r := range []struct {
		day   string
		value int64
	}{
		{"2026-08-28", 600},
		{"2026-08-28", 300},
		{"2026-08-29", 1200},
		{"2026-08-30", 60},
	} {
		if _, err := trk.AddRecord(item.ID, r.value, "", r.day); err != nil {
			t.Fatal(err)
		}
	}

	groups, err := trk.GroupByDay(item.ID, 0)
	if err != nil {
		t.Fatalf("GroupByDay: %v", err)
	}
	want := []models.DayGroup{
		{Day: "2026-08-30", Count: 1, Total: 60},
		{Day: "2026-08-29", Count: 1, Total: 1200},
		{Day: "2026-08-28", Count: 2, Total: 900},
	}
	if len(groups) != len(want) {
		t.Fatalf("len(groups) = %d, want %d", len(groups), len(want))
	}
	for i, g := range groups {
		if g != want[i] {
			t.Errorf("groups[%d] = %+v, want %+v", i, g, want[i])
		}
	}

	limited, err := trk.GroupByDay(item.ID, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(limited) != 2 || limited[0].Day != "2026-08-30" {
		t.Errorf("limited groups = %+v", limited)
	}
}

func TestSetDailyNoteUpserts(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "study", models.KindDuration)
	day := trk.Today()

	if err := trk.SetDailyNote(item.ID, day, "first"); err != nil {
		t.Fatal(err)
	}
	if err := trk.SetDailyNote(item.ID, day, "second"); err != nil {
		t.Fatal(err)
	}

	note, err := trk.DailyNote(item.ID, day)
	if err != nil {
		t.Fatal(err)
	}
	if note == nil || note.Text != "second" {
		t.Errorf("note = %+v, want text 'second'", note)
	}

	notes, err := trk.Repo().LoadNotes()
	if err != nil {
		t.Fatal(err)
	}
	if len(notes) != 1 {
		t.Errorf("stored notes = %d, want 1", len(notes))
	}
}

func TestDailyNoteMissing(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "study", models.KindDuration)

	note, err := trk.DailyNote(item.ID, "2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if note != nil {
		t.Errorf("expected nil note, got %+v", note)
	}
}

func TestRecordedDaysFiltersMonth(t *testing.T) {
	trk := newTestTracker(t)
	item := mustAddItem(t, trk, "study", models.KindDuration)

	for _, day := range []string{"2026-08-01", "2026-08-15", "2026-08-15", "2026-07-31", "2026-09-01"} {
		if _, err := trk.AddRecord(item.ID, 60, "", day); err != nil {
			t.Fatal(err)
		}
	}

	days, err := trk.RecordedDays(2026, 8)
	if err != nil {
		t.Fatalf("RecordedDays: %v", err)
	}
	if len(days) != 2 {
		t.Errorf("len(days) = %d, want 2: %v", len(days), days)
	}
	if !days["2026-08-01"] || !days["2026-08-15"] {
		t.Errorf("days = %v", days)
	}
}
