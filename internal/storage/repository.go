// ABOUTME: Repository interface for stacking data persistence.
// ABOUTME: Collections are loaded and saved whole, mirroring the app's key-value layout.
package storage

import (
	"github.com/skosaka/tsumiage/internal/models"
)

// NotificationSettings is the single global reminder configuration.
type NotificationSettings struct {
	Enabled bool   `json:"enabled"`
	Time    string `json:"time"` // HH:MM
}

// DefaultNotificationSettings is the state before the user ever
// touches the reminder toggle.
var DefaultNotificationSettings = NotificationSettings{Enabled: false, Time: "20:00"}

// Repository defines the storage contract for stacking data.
//
// Collections are persisted as whole units; a missing collection loads
// as empty, never as an error. SaveAll persists every non-nil argument
// in one atomic step so that an item deletion and its record cascade
// cannot be separated by a crash.
type Repository interface {
	LoadItems() ([]*models.Item, error)
	SaveItems(items []*models.Item) error

	LoadRecords() ([]*models.Record, error)
	SaveRecords(records []*models.Record) error

	LoadNotes() ([]*models.DailyNote, error)
	SaveNotes(notes []*models.DailyNote) error

	// SaveAll writes the given collections together. Nil slices are
	// left untouched; empty non-nil slices overwrite.
	SaveAll(items []*models.Item, records []*models.Record, notes []*models.DailyNote) error

	NotificationSettings() (NotificationSettings, error)
	SaveNotificationSettings(s NotificationSettings) error

	// Stopwatch state: the persisted start instant (epoch millis) that
	// lets elapsed time survive process suspension.
	TimerState(itemID string) (startAt int64, ok bool, err error)
	SetTimerState(itemID string, startAt int64) error
	ClearTimerState(itemID string) error

	Close() error
}
