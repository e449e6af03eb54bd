// ABOUTME: Shared TUI view states, messages and formatting helpers.
// ABOUTME: Every view exchanges data with the app through these messages.
package tui

import (
	"time"

	"github.com/skosaka/tsumiage/internal/models"
)

// viewState represents the currently active view.
type viewState int

const (
	viewHome viewState = iota
	viewCalendar
	viewStats
	viewPomodoro
	viewSettings
)

var viewNames = []string{"Home", "Calendar", "Stats", "Pomodoro", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type itemsChangedMsg struct{}

type recordAddedMsg struct {
	item *models.Item
	rec  *models.Record
}

type formDoneMsg struct{}

// --- Helpers ---

func clampCursor(cursor, length int) int {
	if cursor >= length {
		cursor = length - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func iconGlyph(icon string) string {
	switch icon {
	case "clock":
		return "🕐"
	case "hash":
		return "#"
	case "check":
		return "✓"
	case "pencil":
		return "✏"
	case "house":
		return "🏠"
	case "chart":
		return "📈"
	}
	return "・"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
