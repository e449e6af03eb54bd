// ABOUTME: Tests for the pomodoro view's record wiring.
// ABOUTME: Completed work must persist; failed writes must surface.
package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/pomodoro"
	"github.com/skosaka/tsumiage/internal/storage"
	"github.com/skosaka/tsumiage/internal/tracker"
)

func newViewTracker(t *testing.T) (*tracker.Tracker, *models.Item) {
	t.Helper()
	repo, err := storage.OpenKVInMemory()
	if err != nil {
		t.Fatalf("open in-memory store: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	trk := tracker.New(repo)
	item, err := trk.AddItem("勉強", models.KindDuration, "clock", "#FF6B35")
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	return trk, item
}

func TestPomodoroWorkCompleteRecords(t *testing.T) {
	trk, item := newViewTracker(t)

	p := newPomodoroModel(trk, true)
	p.target.itemID = item.ID
	p.target.itemName = item.Name
	p.machine.Start()

	for i := 0; i < pomodoro.WorkDuration; i++ {
		p, _ = p.update(tickMsg(time.Time{}))
	}

	if p.machine.Phase != pomodoro.Break {
		t.Fatalf("phase = %v, want Break", p.machine.Phase)
	}
	records, err := trk.RecordsForItem(item.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if records[0].Value != int64(pomodoro.WorkDuration) || records[0].Note != "ポモドーロ" {
		t.Errorf("record = %+v", records[0])
	}
}

func TestPomodoroStopRecordsPartialWork(t *testing.T) {
	trk, item := newViewTracker(t)

	p := newPomodoroModel(trk, true)
	p.target.itemID = item.ID
	p.machine.Start()
	for i := 0; i < 90; i++ {
		p, _ = p.update(tickMsg(time.Time{}))
	}

	var cmd tea.Cmd
	p, cmd = p.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatal("stop produced no status")
	}
	if msg, ok := cmd().(statusMsg); !ok || msg.isError {
		t.Errorf("status = %+v", msg)
	}

	records, _ := trk.RecordsForItem(item.ID)
	if len(records) != 1 || records[0].Value != 90 || records[0].Note != "ポモドーロ（中断）" {
		t.Errorf("records = %+v", records)
	}
}

func TestPomodoroRecordFailureSurfaces(t *testing.T) {
	trk, item := newViewTracker(t)

	p := newPomodoroModel(trk, true)
	p.target.itemID = item.ID
	p.machine.Start()
	p, _ = p.update(tickMsg(time.Time{}))

	// The bound item disappears before the stop commits
	if err := trk.DeleteItem(item.ID); err != nil {
		t.Fatal(err)
	}

	var cmd tea.Cmd
	p, cmd = p.update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Fatal("failed write produced no status")
	}
	msg, ok := cmd().(statusMsg)
	if !ok || !msg.isError {
		t.Errorf("status = %+v, want error status", msg)
	}
	if p.target.recordErr != nil {
		t.Error("error not cleared after surfacing")
	}
}
