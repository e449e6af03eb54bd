// ABOUTME: Consecutive-day streak calculation over the full record set.
// ABOUTME: A missing today does not break the streak; any missing prior day ends it.
package tracker

import (
	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
)

// streakHorizon bounds the backward walk.
const streakHorizon = 365

// CalcStreak counts consecutive logical days with at least one record,
// walking backward from today. Today itself may be empty without
// ending the streak (nothing may have been logged yet); the first
// empty day before today terminates the walk. Pure.
func CalcStreak(records []*models.Record, today string) int {
	days := make(map[string]bool, len(records))
	for _, r := range records {
		days[r.Day] = true
	}

	streak := 0
	day := today
	for i := 0; i < streakHorizon; i++ {
		if days[day] {
			streak++
		} else if i > 0 {
			break
		}
		day = daykey.Shift(day, -1)
	}
	return streak
}

// Streak returns the current streak across all items.
func (t *Tracker) Streak() (int, error) {
	records, err := t.Records()
	if err != nil {
		return 0, err
	}
	return CalcStreak(records, t.Today()), nil
}
