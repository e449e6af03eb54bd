// ABOUTME: Goal snapshot management and pure progress calculation.
// ABOUTME: Progress is measured from the goal-setting snapshot, never from zero.
package tracker

import (
	"math"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
)

// SetGoal sets an item's goal, snapshotting the current total and day
// so progress counts only what accumulates after this moment.
func (t *Tracker) SetGoal(itemID string, target int64, deadline string) error {
	if target < 0 {
		target = 0
	}
	today := t.Today()
	return t.updateItem(itemID, func(it *models.Item) {
		it.Goal = &models.Goal{
			Target:     target,
			Deadline:   deadline,
			StartTotal: it.TotalValue,
			StartDate:  today,
		}
	})
}

// ClearGoal removes an item's goal.
func (t *Tracker) ClearGoal(itemID string) error {
	return t.updateItem(itemID, func(it *models.Item) {
		it.Goal = nil
	})
}

// GoalProgress is the derived state of a goal at one instant.
type GoalProgress struct {
	ProgressValue int64 // accumulated since the snapshot, >= 0
	Remaining     int64 // left to reach the target, >= 0
	DaysRemaining int   // whole days until the deadline, >= 0
	Percent       int   // clamped to [0, 100]
	TodayTarget   int64 // suggested per-day pace
}

// CalcGoalProgress derives goal progress from the goal, the item's
// current total, and today's day key. Pure; recomputed per query.
func CalcGoalProgress(goal *models.Goal, totalValue int64, today string) GoalProgress {
	if goal == nil {
		return GoalProgress{}
	}
	progress := totalValue - goal.StartTotal
	if progress < 0 {
		progress = 0
	}
	remaining := goal.Target - progress
	if remaining < 0 {
		remaining = 0
	}
	days := daykey.DaysUntil(goal.Deadline, today)

	percent := CalcPercent(progress, goal.Target)
	if remaining == 0 && goal.Target > 0 {
		percent = 100
	}

	divisor := days
	if divisor < 1 {
		divisor = 1
	}
	todayTarget := int64(math.Ceil(float64(remaining) / float64(divisor)))

	return GoalProgress{
		ProgressValue: progress,
		Remaining:     remaining,
		DaysRemaining: days,
		Percent:       percent,
		TodayTarget:   todayTarget,
	}
}

// CalcPercent returns current/target as a rounded percentage clamped
// to [0, 100]. A zero or missing target yields 0, not an error.
func CalcPercent(current, target int64) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(current) / float64(target) * 100))
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// GoalProgressFor is the service-level helper tying an item's stored
// goal to today's key.
func (t *Tracker) GoalProgressFor(item *models.Item) GoalProgress {
	return CalcGoalProgress(item.Goal, item.TotalValue, t.Today())
}
