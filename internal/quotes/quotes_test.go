// ABOUTME: Tests for the quote catalog and the deterministic daily pick.
// ABOUTME: Checks catalog integrity and day-key stability.
package quotes

import "testing"

func TestCatalog(t *testing.T) {
	if Count() != 50 {
		t.Errorf("Count = %d, want 50", Count())
	}

	seen := make(map[int]bool)
	for i, q := range All() {
		if q.No != i+1 {
			t.Errorf("quote %d numbered %d", i, q.No)
		}
		if q.Text == "" || q.Author == "" {
			t.Errorf("quote %d incomplete: %+v", i, q)
		}
		if seen[q.No] {
			t.Errorf("duplicate quote number %d", q.No)
		}
		seen[q.No] = true
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].Text = "changed"
	if All()[0].Text == "changed" {
		t.Error("All exposes the internal catalog")
	}
}

func TestForDayDeterministic(t *testing.T) {
	day := "2026-08-30"
	first := ForDay(day)
	for i := 0; i < 10; i++ {
		if got := ForDay(day); got != first {
			t.Fatalf("ForDay varies: %+v vs %+v", got, first)
		}
	}
}

func TestHistory(t *testing.T) {
	entries := History("2026-08-30", 7)
	if len(entries) != 7 {
		t.Fatalf("len = %d, want 7", len(entries))
	}
	if entries[0].Day != "2026-08-30" {
		t.Errorf("entries[0].Day = %q, want today first", entries[0].Day)
	}
	if entries[6].Day != "2026-08-24" {
		t.Errorf("entries[6].Day = %q, want 2026-08-24", entries[6].Day)
	}
	for _, e := range entries {
		if e.Quote != ForDay(e.Day) {
			t.Errorf("entry for %s does not match the daily pick", e.Day)
		}
	}

	if got := History("2026-08-30", 0); len(got) != 1 {
		t.Errorf("History with days=0 returned %d entries, want 1", len(got))
	}
}

func TestForDayVariesAcrossDays(t *testing.T) {
	// Not every pair differs, but a month of days must not collapse to
	// one quote.
	days := []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05",
		"2026-08-06", "2026-08-07", "2026-08-08", "2026-08-09", "2026-08-10",
	}
	distinct := make(map[int]bool)
	for _, d := range days {
		distinct[ForDay(d).No] = true
	}
	if len(distinct) < 2 {
		t.Errorf("10 days produced %d distinct quotes", len(distinct))
	}
}
