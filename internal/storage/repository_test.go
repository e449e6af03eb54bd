// ABOUTME: Repository conformance tests run against every backend.
// ABOUTME: Covers collection round-trips, SaveAll semantics and timer state.
package storage

import (
	"testing"
	"time"

	"github.com/skosaka/tsumiage/internal/models"
)

// backends enumerates every Repository implementation under test.
var backends = map[string]func(t *testing.T) Repository{
	"kv": func(t *testing.T) Repository {
		repo, err := OpenKVInMemory()
		if err != nil {
			t.Fatalf("open kv: %v", err)
		}
		return repo
	},
	"sqlite": func(t *testing.T) Repository {
		repo, err := OpenSQLiteMemory()
		if err != nil {
			t.Fatalf("open sqlite: %v", err)
		}
		return repo
	},
}

func eachBackend(t *testing.T, fn func(t *testing.T, repo Repository)) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			repo := open(t)
			t.Cleanup(func() { repo.Close() })
			fn(t, repo)
		})
	}
}

func TestEmptyCollectionsLoadEmpty(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		items, err := repo.LoadItems()
		if err != nil {
			t.Fatalf("LoadItems: %v", err)
		}
		if len(items) != 0 {
			t.Errorf("items = %d, want 0", len(items))
		}

		records, err := repo.LoadRecords()
		if err != nil {
			t.Fatalf("LoadRecords: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("records = %d, want 0", len(records))
		}

		notes, err := repo.LoadNotes()
		if err != nil {
			t.Fatalf("LoadNotes: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("notes = %d, want 0", len(notes))
		}
	})
}

func TestItemRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		item := models.NewItem("study", models.KindDuration, "clock", "#FF6B35")
		item.TotalValue = 3600
		item.Order = 2
		item.Goal = &models.Goal{Target: 7200, Deadline: "2026-09-30", StartTotal: 3600, StartDate: "2026-08-30"}
		item.Reminder = &models.Reminder{Enabled: true, Time: "07:30"}

		if err := repo.SaveItems([]*models.Item{item}); err != nil {
			t.Fatalf("SaveItems: %v", err)
		}

		loaded, err := repo.LoadItems()
		if err != nil {
			t.Fatalf("LoadItems: %v", err)
		}
		if len(loaded) != 1 {
			t.Fatalf("len = %d, want 1", len(loaded))
		}
		got := loaded[0]
		if got.ID != item.ID || got.Name != "study" || got.Kind != models.KindDuration {
			t.Errorf("item = %+v", got)
		}
		if got.TotalValue != 3600 || got.Order != 2 {
			t.Errorf("total/order = %d/%d", got.TotalValue, got.Order)
		}
		if got.Goal == nil || got.Goal.Target != 7200 || got.Goal.StartTotal != 3600 {
			t.Errorf("goal = %+v", got.Goal)
		}
		if got.Reminder == nil || got.Reminder.Time != "07:30" {
			t.Errorf("reminder = %+v", got.Reminder)
		}
	})
}

func TestRecordAndNoteRoundTrip(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		rec := models.NewRecord("item-1", 600, "2026-08-30").WithNote("朝")
		rec.CreatedAt = time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		if err := repo.SaveRecords([]*models.Record{rec}); err != nil {
			t.Fatalf("SaveRecords: %v", err)
		}

		records, err := repo.LoadRecords()
		if err != nil {
			t.Fatalf("LoadRecords: %v", err)
		}
		if len(records) != 1 {
			t.Fatalf("len = %d, want 1", len(records))
		}
		got := records[0]
		if got.ID != rec.ID || got.Value != 600 || got.Day != "2026-08-30" || got.Note != "朝" {
			t.Errorf("record = %+v", got)
		}
		if !got.CreatedAt.Equal(rec.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, rec.CreatedAt)
		}

		note := models.NewDailyNote("item-1", "2026-08-30", "集中できた")
		if err := repo.SaveNotes([]*models.DailyNote{note}); err != nil {
			t.Fatalf("SaveNotes: %v", err)
		}
		notes, err := repo.LoadNotes()
		if err != nil {
			t.Fatalf("LoadNotes: %v", err)
		}
		if len(notes) != 1 || notes[0].Text != "集中できた" {
			t.Errorf("notes = %+v", notes)
		}
	})
}

func TestSaveAllNilLeavesUntouched(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		item := models.NewItem("study", models.KindDuration, "clock", "#FF6B35")
		rec := models.NewRecord(item.ID, 60, "2026-08-30")
		if err := repo.SaveAll([]*models.Item{item}, []*models.Record{rec}, nil); err != nil {
			t.Fatalf("SaveAll: %v", err)
		}

		// Nil records must not clear; empty non-nil must.
		if err := repo.SaveAll([]*models.Item{item}, nil, nil); err != nil {
			t.Fatalf("SaveAll nil: %v", err)
		}
		records, _ := repo.LoadRecords()
		if len(records) != 1 {
			t.Errorf("nil SaveAll cleared records: %d", len(records))
		}

		if err := repo.SaveAll(nil, []*models.Record{}, nil); err != nil {
			t.Fatalf("SaveAll empty: %v", err)
		}
		records, _ = repo.LoadRecords()
		if len(records) != 0 {
			t.Errorf("empty SaveAll kept records: %d", len(records))
		}
		items, _ := repo.LoadItems()
		if len(items) != 1 {
			t.Errorf("nil SaveAll cleared items: %d", len(items))
		}
	})
}

func TestNotificationSettings(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		s, err := repo.NotificationSettings()
		if err != nil {
			t.Fatalf("NotificationSettings: %v", err)
		}
		if s != DefaultNotificationSettings {
			t.Errorf("default = %+v, want %+v", s, DefaultNotificationSettings)
		}

		want := NotificationSettings{Enabled: true, Time: "07:45"}
		if err := repo.SaveNotificationSettings(want); err != nil {
			t.Fatalf("SaveNotificationSettings: %v", err)
		}
		s, err = repo.NotificationSettings()
		if err != nil {
			t.Fatal(err)
		}
		if s != want {
			t.Errorf("settings = %+v, want %+v", s, want)
		}
	})
}

func TestTimerState(t *testing.T) {
	eachBackend(t, func(t *testing.T, repo Repository) {
		if _, ok, err := repo.TimerState("item-1"); err != nil || ok {
			t.Fatalf("initial TimerState = ok=%v err=%v", ok, err)
		}

		start := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC).UnixMilli()
		if err := repo.SetTimerState("item-1", start); err != nil {
			t.Fatalf("SetTimerState: %v", err)
		}

		got, ok, err := repo.TimerState("item-1")
		if err != nil || !ok {
			t.Fatalf("TimerState = ok=%v err=%v", ok, err)
		}
		if got != start {
			t.Errorf("startAt = %d, want %d", got, start)
		}

		// Independent per item
		if _, ok, _ := repo.TimerState("item-2"); ok {
			t.Error("unrelated item reports a running timer")
		}

		if err := repo.ClearTimerState("item-1"); err != nil {
			t.Fatalf("ClearTimerState: %v", err)
		}
		if _, ok, _ := repo.TimerState("item-1"); ok {
			t.Error("timer state survived clear")
		}

		// Clearing an absent state is not an error
		if err := repo.ClearTimerState("item-1"); err != nil {
			t.Errorf("second clear: %v", err)
		}
	})
}
