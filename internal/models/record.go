// ABOUTME: Record and DailyNote models for logged progress.
// ABOUTME: Records are immutable; corrections insert compensating records.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Record is one logged unit of progress against an item, stamped with
// the logical day it counts toward. Records are never edited after
// creation; day-total adjustments insert new compensating records.
type Record struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Value     int64     `json:"value"`
	Day       string    `json:"day"` // logical day key, YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	Note      string    `json:"note,omitempty"`
}

// NewRecord creates a record for the given item, value and logical day.
func NewRecord(itemID string, value int64, day string) *Record {
	return &Record{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Value:     value,
		Day:       day,
		CreatedAt: time.Now(),
	}
}

// WithNote sets a free-text note on the record.
func (r *Record) WithNote(note string) *Record {
	r.Note = note
	return r
}

// DailyNote is free text attached to an (item, day) pair. At most one
// exists per key; writes upsert.
type DailyNote struct {
	ID        string    `json:"id"`
	ItemID    string    `json:"item_id"`
	Day       string    `json:"day"`
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDailyNote creates a daily note for the given item and day.
func NewDailyNote(itemID, day, text string) *DailyNote {
	return &DailyNote{
		ID:        uuid.New().String(),
		ItemID:    itemID,
		Day:       day,
		Text:      text,
		UpdatedAt: time.Now(),
	}
}

// DayGroup is the per-logical-day aggregate of an item's records.
type DayGroup struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
	Total int64  `json:"total"`
}
