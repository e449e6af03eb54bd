// ABOUTME: Tests for logical-day resolution around the cutoff hour.
// ABOUTME: Covers boundary instants, legacy normalization and day math.
package daykey

import (
	"testing"
	"time"
)

func TestOf(t *testing.T) {
	tests := []struct {
		name   string
		at     time.Time
		cutoff int
		want   string
	}{
		{
			name:   "just before cutoff belongs to previous day",
			at:     time.Date(2026, 8, 30, 5, 59, 59, 0, time.Local),
			cutoff: 6,
			want:   "2026-08-29",
		},
		{
			name:   "cutoff instant belongs to the new day",
			at:     time.Date(2026, 8, 30, 6, 0, 0, 0, time.Local),
			cutoff: 6,
			want:   "2026-08-30",
		},
		{
			name:   "midnight belongs to previous day",
			at:     time.Date(2026, 8, 30, 0, 0, 0, 0, time.Local),
			cutoff: 6,
			want:   "2026-08-29",
		},
		{
			name:   "afternoon is the calendar day",
			at:     time.Date(2026, 8, 30, 15, 30, 0, 0, time.Local),
			cutoff: 6,
			want:   "2026-08-30",
		},
		{
			name:   "cutoff zero is plain calendar days",
			at:     time.Date(2026, 8, 30, 0, 30, 0, 0, time.Local),
			cutoff: 0,
			want:   "2026-08-30",
		},
		{
			name:   "month boundary",
			at:     time.Date(2026, 9, 1, 2, 0, 0, 0, time.Local),
			cutoff: 6,
			want:   "2026-08-31",
		},
		{
			name:   "year boundary",
			at:     time.Date(2026, 1, 1, 3, 0, 0, 0, time.Local),
			cutoff: 6,
			want:   "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Of(tt.at, tt.cutoff); got != tt.want {
				t.Errorf("Of(%v, %d) = %q, want %q", tt.at, tt.cutoff, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	created := time.Date(2026, 8, 30, 2, 0, 0, 0, time.Local)

	tests := []struct {
		name    string
		stored  string
		created time.Time
		want    string
	}{
		{"clean key passes through", "2026-08-30", created, "2026-08-30"},
		{"slash separated is fixed", "2026/08/30", time.Time{}, "2026-08-30"},
		{"garbage falls back to created instant", "30 Aug 2026", created, "2026-08-29"},
		{"empty falls back to created instant", "", created, "2026-08-29"},
		{"garbage with zero created passes through", "not-a-date", time.Time{}, "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.stored, tt.created, 6); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.stored, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name   string
		target string
		today  string
		want   int
	}{
		{"same day", "2026-08-30", "2026-08-30", 0},
		{"tomorrow", "2026-08-31", "2026-08-30", 1},
		{"a month out", "2026-09-29", "2026-08-30", 30},
		{"past deadline clamps to zero", "2026-08-01", "2026-08-30", 0},
		{"invalid target", "soon", "2026-08-30", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysUntil(tt.target, tt.today); got != tt.want {
				t.Errorf("DaysUntil(%q, %q) = %d, want %d", tt.target, tt.today, got, tt.want)
			}
		})
	}
}

func TestDaysUntilAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz data unavailable: %v", err)
	}
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })

	// 2026-03-08 02:00 springs forward, so the local midnight-to-midnight
	// span is 23 hours; the day count must still be whole days.
	if got := DaysUntil("2026-03-09", "2026-03-08"); got != 1 {
		t.Errorf("DaysUntil across spring-forward = %d, want 1", got)
	}
	if got := DaysUntil("2026-03-15", "2026-03-01"); got != 14 {
		t.Errorf("DaysUntil spanning the transition = %d, want 14", got)
	}
	// Fall back (2026-11-01) stretches the span to 25 hours
	if got := DaysUntil("2026-11-02", "2026-11-01"); got != 1 {
		t.Errorf("DaysUntil across fall-back = %d, want 1", got)
	}
}

func TestShift(t *testing.T) {
	if got := Shift("2026-08-30", 1); got != "2026-08-31" {
		t.Errorf("Shift(+1) = %q, want 2026-08-31", got)
	}
	if got := Shift("2026-08-30", -30); got != "2026-07-31" {
		t.Errorf("Shift(-30) = %q, want 2026-07-31", got)
	}
	if got := Shift("2026-08-31", 1); got != "2026-09-01" {
		t.Errorf("Shift over month = %q, want 2026-09-01", got)
	}
	if got := Shift("bogus", 1); got != "bogus" {
		t.Errorf("Shift(invalid) = %q, want passthrough", got)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2026-08-30")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got.Year() != 2026 || got.Month() != time.August || got.Day() != 30 {
		t.Errorf("Parse = %v", got)
	}
	if _, err := Parse("2026/08/30"); err == nil {
		t.Error("Parse accepted slash-separated input")
	}
}
