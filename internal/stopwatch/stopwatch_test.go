// ABOUTME: Tests for the persistence-backed stopwatch.
// ABOUTME: Simulates process suspension by advancing a fake clock.
package stopwatch

import (
	"testing"
	"time"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/storage"
	"github.com/skosaka/tsumiage/internal/tracker"
)

func newTestSetup(t *testing.T) (*tracker.Tracker, *models.Item, *time.Time) {
	t.Helper()
	repo, err := storage.OpenKVInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { repo.Close() })

	now := time.Date(2026, 8, 30, 10, 0, 0, 0, time.Local)
	trk := tracker.New(repo, tracker.WithClock(func() time.Time { return now }))

	item, err := trk.AddItem("study", models.KindDuration, "clock", "#FF6B35")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	return trk, item, &now
}

func TestElapsedSurvivesSuspension(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	if err := sw.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	// The process could have been suspended the whole time; elapsed is
	// recomputed from the stored instant, not from ticks.
	*now = now.Add(125 * time.Second)

	elapsed, err := sw.Elapsed()
	if err != nil {
		t.Fatalf("Elapsed: %v", err)
	}
	if elapsed != 125*time.Second {
		t.Errorf("elapsed = %v, want 125s", elapsed)
	}

	// A second stopwatch over the same store sees the same run
	other := New(trk, item.ID).WithClock(func() time.Time { return *now })
	running, err := other.Running()
	if err != nil || !running {
		t.Errorf("Running on fresh instance = %v, %v", running, err)
	}
}

func TestDoubleStartKeepsOrigin(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(60 * time.Second)
	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}

	elapsed, _ := sw.Elapsed()
	if elapsed != 60*time.Second {
		t.Errorf("elapsed = %v, want 60s (second Start must not reset)", elapsed)
	}
}

func TestStopRecordsWholeSeconds(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(90*time.Second + 700*time.Millisecond)

	rec, err := sw.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if rec == nil || rec.Value != 90 {
		t.Fatalf("record = %+v, want value 90", rec)
	}
	if rec.Day != "2026-08-30" {
		t.Errorf("Day = %q", rec.Day)
	}

	running, _ := sw.Running()
	if running {
		t.Error("state not cleared after Stop")
	}

	got, _ := trk.Item(item.ID)
	if got.TotalValue != 90 {
		t.Errorf("TotalValue = %d, want 90", got.TotalValue)
	}
}

func TestStopZeroElapsedRecordsNothing(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	rec, err := sw.Stop()
	if err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if rec != nil {
		t.Errorf("record = %+v, want nil", rec)
	}
	if running, _ := sw.Running(); running {
		t.Error("state not cleared after zero-second Stop")
	}
	records, _ := trk.RecordsForItem(item.ID)
	if len(records) != 0 {
		t.Errorf("records = %d, want 0", len(records))
	}
}

func TestStopWhenNotRunning(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	rec, err := sw.Stop()
	if err != nil || rec != nil {
		t.Errorf("Stop without Start = %+v, %v, want nil, nil", rec, err)
	}
}

func TestResetDiscardsRun(t *testing.T) {
	trk, item, now := newTestSetup(t)
	sw := New(trk, item.ID).WithClock(func() time.Time { return *now })

	if err := sw.Start(); err != nil {
		t.Fatal(err)
	}
	*now = now.Add(time.Hour)
	if err := sw.Reset(); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if running, _ := sw.Running(); running {
		t.Error("still running after Reset")
	}
	records, _ := trk.RecordsForItem(item.ID)
	if len(records) != 0 {
		t.Errorf("Reset recorded %d records", len(records))
	}
}
