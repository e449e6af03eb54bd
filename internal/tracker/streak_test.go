// ABOUTME: Tests for the consecutive-day streak walk.
// ABOUTME: Exercises the empty-today tolerance and gap termination.
package tracker

import (
	"testing"

	"github.com/skosaka/tsumiage/internal/models"
)

func recordsOn(days ...string) []*models.Record {
	out := make([]*models.Record, 0, len(days))
	for _, d := range days {
		out = append(out, models.NewRecord("item", 1, d))
	}
	return out
}

func TestCalcStreak(t *testing.T) {
	today := "2026-08-30"
	tests := []struct {
		name string
		days []string
		want int
	}{
		{"empty", nil, 0},
		{"only today", []string{"2026-08-30"}, 1},
		{"three days ending today", []string{"2026-08-28", "2026-08-29", "2026-08-30"}, 3},
		{"empty today tolerated", []string{"2026-08-28", "2026-08-29"}, 2},
		{"gap before yesterday breaks", []string{"2026-08-27", "2026-08-29"}, 1},
		{"only old records", []string{"2026-08-20"}, 0},
		{"duplicate days count once", []string{"2026-08-30", "2026-08-30", "2026-08-29"}, 2},
		{"month boundary", []string{"2026-07-31", "2026-08-01"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalcStreak(recordsOn(tt.days...), today); got != tt.want {
				t.Errorf("CalcStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalcStreakMonthBoundaryRun(t *testing.T) {
	// A run crossing a month boundary, ending yesterday
	got := CalcStreak(recordsOn("2026-07-30", "2026-07-31", "2026-08-01"), "2026-08-02")
	if got != 3 {
		t.Errorf("CalcStreak = %d, want 3", got)
	}
}

func TestStreakAcrossItems(t *testing.T) {
	trk := newTestTracker(t)
	a := mustAddItem(t, trk, "study", models.KindDuration)
	b := mustAddItem(t, trk, "pushups", models.KindCount)

	// Alternating items still form one streak
	if _, err := trk.AddRecord(a.ID, 60, "", "2026-08-29"); err != nil {
		t.Fatal(err)
	}
	if _, err := trk.AddRecord(b.ID, 5, "", "2026-08-30"); err != nil {
		t.Fatal(err)
	}

	streak, err := trk.Streak()
	if err != nil {
		t.Fatalf("Streak: %v", err)
	}
	if streak != 2 {
		t.Errorf("Streak = %d, want 2", streak)
	}
}
