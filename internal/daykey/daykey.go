// ABOUTME: Logical-day resolution with a configurable cutoff hour.
// ABOUTME: A "day" runs cutoff-to-cutoff (default 06:00), not midnight to midnight.
package daykey

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DefaultCutoffHour is the hour at which a new logical day begins.
const DefaultCutoffHour = 6

// Layout is the canonical day key layout, zero-padded.
const Layout = "2006-01-02"

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Of returns the logical day key for an instant. Instants before the
// cutoff hour belong to the previous calendar day; the cutoff instant
// itself belongs to the new day.
func Of(t time.Time, cutoffHour int) string {
	if t.Hour() < cutoffHour {
		t = t.AddDate(0, 0, -1)
	}
	return t.Format(Layout)
}

// Today returns the logical day key of the current instant.
func Today(cutoffHour int) string {
	return Of(time.Now(), cutoffHour)
}

// Normalize resolves a stored date of unknown vintage to a day key.
// Clean keys pass through; slash-separated dates are re-separated;
// anything else is derived from the creation instant via the cutoff
// rule; if the creation instant is zero too, the input is returned
// unchanged. Never errors.
func Normalize(stored string, createdAt time.Time, cutoffHour int) string {
	if keyPattern.MatchString(stored) {
		return stored
	}
	if strings.Contains(stored, "/") {
		candidate := strings.ReplaceAll(stored, "/", "-")
		if t, err := time.Parse(Layout, candidate); err == nil {
			return t.Format(Layout)
		}
	}
	if !createdAt.IsZero() {
		return Of(createdAt, cutoffHour)
	}
	return stored
}

// Parse converts a day key back to a time at local midnight.
func Parse(day string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, day, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", day, err)
	}
	return t, nil
}

// DaysUntil returns the whole days from today's key to the target key,
// clamped to zero. A deadline in the past never goes negative.
// The difference is taken on UTC dates so a DST transition between
// the two keys cannot shave the span below a whole day.
func DaysUntil(target, today string) int {
	tt, err := time.ParseInLocation(Layout, target, time.UTC)
	if err != nil {
		return 0
	}
	td, err := time.ParseInLocation(Layout, today, time.UTC)
	if err != nil {
		return 0
	}
	days := int(tt.Sub(td).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// Shift returns the day key n days after (or before, for negative n)
// the given key. Invalid keys are returned unchanged.
func Shift(day string, n int) string {
	t, err := Parse(day)
	if err != nil {
		return day
	}
	return t.AddDate(0, 0, n).Format(Layout)
}
