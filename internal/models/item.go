// ABOUTME: Item model and Kind enum for stacking habits.
// ABOUTME: Defines duration/count kinds, goal snapshots, and reminders.
package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind determines the unit semantics of an item's records:
// seconds for duration items, occurrences for count items.
// Fixed at creation.
type Kind string

const (
	KindDuration Kind = "duration"
	KindCount    Kind = "count"
)

// AllKinds returns all valid item kinds.
var AllKinds = []Kind{KindDuration, KindCount}

// IsValidKind checks if a string is a valid item kind.
func IsValidKind(s string) bool {
	for _, k := range AllKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// ParseKind resolves a user-facing kind name. "time" is the name
// shown in help and schemas for duration items; the stored value
// "duration" is accepted too.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "time", string(KindDuration):
		return KindDuration, nil
	case string(KindCount):
		return KindCount, nil
	}
	return "", fmt.Errorf("unknown item kind: %s (want time or count)", s)
}

// IconOptions are the selectable item icons.
var IconOptions = []string{"clock", "hash", "check", "pencil", "house", "chart"}

// ColorOptions are the selectable item colors.
var ColorOptions = []string{
	"#FF6B35", "#4CAF50", "#2196F3", "#9C27B0",
	"#F44336", "#FF9800", "#00BCD4", "#795548",
}

// Goal is a single target with a deadline. StartTotal and StartDate
// snapshot the item at the moment the goal was set; progress is
// measured relative to the snapshot, not from zero.
type Goal struct {
	Target     int64  `json:"target"`
	Deadline   string `json:"deadline"` // YYYY-MM-DD
	StartTotal int64  `json:"start_total"`
	StartDate  string `json:"start_date"` // YYYY-MM-DD
}

// Reminder is a per-item daily reminder setting, consumed only by the
// notification scheduler.
type Reminder struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // HH:MM
}

// Item represents one tracked habit.
type Item struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       Kind      `json:"kind"`
	Icon       string    `json:"icon"`
	Color      string    `json:"color"`
	TotalValue int64     `json:"total_value"`
	Goal       *Goal     `json:"goal,omitempty"`
	Reminder   *Reminder `json:"reminder,omitempty"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewItem creates a new Item with a generated UUID and current timestamps.
func NewItem(name string, kind Kind, icon, color string) *Item {
	now := time.Now()
	return &Item{
		ID:        uuid.New().String(),
		Name:      name,
		Kind:      kind,
		Icon:      icon,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Unit returns the display unit for the item's kind.
func (i *Item) Unit() string {
	if i.Kind == KindDuration {
		return "秒"
	}
	return "回"
}

// FormatValue renders a value in the item's unit.
func (i *Item) FormatValue(v int64) string {
	if i.Kind == KindDuration {
		return FormatTime(v)
	}
	return FormatCount(v)
}
