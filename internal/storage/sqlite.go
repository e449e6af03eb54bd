// ABOUTME: SQLite storage backend using modernc.org/sqlite (pure Go, no CGO).
// ABOUTME: Collection saves replace table contents in one transaction, matching Repository semantics.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/skosaka/tsumiage/internal/models"
)

const currentVersion = 1

// SQLiteStore is a Repository backed by a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at dbPath and runs migrations.
func OpenSQLite(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// OpenSQLiteMemory creates an in-memory store for testing.
func OpenSQLiteMemory() (*SQLiteStore, error) {
	return OpenSQLite(":memory:")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= currentVersion {
		return nil
	}
	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}
	_, err := s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *SQLiteStore) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS items (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		kind        TEXT NOT NULL,
		icon        TEXT NOT NULL DEFAULT '',
		color       TEXT NOT NULL DEFAULT '',
		total_value INTEGER NOT NULL DEFAULT 0,
		goal        TEXT,
		reminder    TEXT,
		sort_order  INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS records (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL,
		value      INTEGER NOT NULL,
		day        TEXT NOT NULL,
		created_at TEXT NOT NULL,
		note       TEXT NOT NULL DEFAULT '',
		seq        INTEGER
	);

	CREATE INDEX IF NOT EXISTS idx_records_item ON records(item_id);
	CREATE INDEX IF NOT EXISTS idx_records_day  ON records(day);

	CREATE TABLE IF NOT EXISTS daily_notes (
		id         TEXT PRIMARY KEY,
		item_id    TEXT NOT NULL,
		day        TEXT NOT NULL,
		text       TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL,
		UNIQUE(item_id, day)
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS timer_state (
		item_id  TEXT PRIMARY KEY,
		start_at INTEGER NOT NULL
	);
	`
	_, err := s.db.Exec(ddl)
	return err
}

func (s *SQLiteStore) LoadItems() ([]*models.Item, error) {
	rows, err := s.db.Query(
		`SELECT id, name, kind, icon, color, total_value, goal, reminder, sort_order, created_at, updated_at
		 FROM items ORDER BY sort_order`)
	if err != nil {
		return nil, fmt.Errorf("load items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var it models.Item
		var kind, createdAt, updatedAt string
		var goal, reminder sql.NullString
		if err := rows.Scan(&it.ID, &it.Name, &kind, &it.Icon, &it.Color, &it.TotalValue,
			&goal, &reminder, &it.Order, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		it.Kind = models.Kind(kind)
		if goal.Valid && goal.String != "" {
			var g models.Goal
			if err := json.Unmarshal([]byte(goal.String), &g); err == nil {
				it.Goal = &g
			}
		}
		if reminder.Valid && reminder.String != "" {
			var r models.Reminder
			if err := json.Unmarshal([]byte(reminder.String), &r); err == nil {
				it.Reminder = &r
			}
		}
		it.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		it.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		items = append(items, &it)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) SaveItems(items []*models.Item) error {
	return s.inTx(func(tx *sql.Tx) error {
		return replaceItems(tx, items)
	})
}

func (s *SQLiteStore) LoadRecords() ([]*models.Record, error) {
	rows, err := s.db.Query(
		`SELECT id, item_id, value, day, created_at, note FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	defer rows.Close()

	var records []*models.Record
	for rows.Next() {
		var r models.Record
		var createdAt string
		if err := rows.Scan(&r.ID, &r.ItemID, &r.Value, &r.Day, &createdAt, &r.Note); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		records = append(records, &r)
	}
	return records, rows.Err()
}

func (s *SQLiteStore) SaveRecords(records []*models.Record) error {
	return s.inTx(func(tx *sql.Tx) error {
		return replaceRecords(tx, records)
	})
}

func (s *SQLiteStore) LoadNotes() ([]*models.DailyNote, error) {
	rows, err := s.db.Query(
		`SELECT id, item_id, day, text, updated_at FROM daily_notes ORDER BY day`)
	if err != nil {
		return nil, fmt.Errorf("load daily notes: %w", err)
	}
	defer rows.Close()

	var notes []*models.DailyNote
	for rows.Next() {
		var n models.DailyNote
		var updatedAt string
		if err := rows.Scan(&n.ID, &n.ItemID, &n.Day, &n.Text, &updatedAt); err != nil {
			return nil, err
		}
		n.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
		notes = append(notes, &n)
	}
	return notes, rows.Err()
}

func (s *SQLiteStore) SaveNotes(notes []*models.DailyNote) error {
	return s.inTx(func(tx *sql.Tx) error {
		return replaceNotes(tx, notes)
	})
}

// SaveAll replaces the given collections inside one transaction.
func (s *SQLiteStore) SaveAll(items []*models.Item, records []*models.Record, notes []*models.DailyNote) error {
	return s.inTx(func(tx *sql.Tx) error {
		if items != nil {
			if err := replaceItems(tx, items); err != nil {
				return err
			}
		}
		if records != nil {
			if err := replaceRecords(tx, records); err != nil {
				return err
			}
		}
		if notes != nil {
			if err := replaceNotes(tx, notes); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) inTx(fn func(tx *sql.Tx) error) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func replaceItems(tx *sql.Tx, items []*models.Item) error {
	if _, err := tx.Exec(`DELETE FROM items`); err != nil {
		return fmt.Errorf("clear items: %w", err)
	}
	for _, it := range items {
		var goal, reminder any
		if it.Goal != nil {
			data, err := json.Marshal(it.Goal)
			if err != nil {
				return fmt.Errorf("marshal goal: %w", err)
			}
			goal = string(data)
		}
		if it.Reminder != nil {
			data, err := json.Marshal(it.Reminder)
			if err != nil {
				return fmt.Errorf("marshal reminder: %w", err)
			}
			reminder = string(data)
		}
		_, err := tx.Exec(
			`INSERT INTO items (id, name, kind, icon, color, total_value, goal, reminder, sort_order, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			it.ID, it.Name, string(it.Kind), it.Icon, it.Color, it.TotalValue,
			goal, reminder, it.Order,
			it.CreatedAt.UTC().Format(time.RFC3339), it.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert item %s: %w", it.ID, err)
		}
	}
	return nil
}

func replaceRecords(tx *sql.Tx, records []*models.Record) error {
	if _, err := tx.Exec(`DELETE FROM records`); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	for i, r := range records {
		_, err := tx.Exec(
			`INSERT INTO records (id, item_id, value, day, created_at, note, seq) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			r.ID, r.ItemID, r.Value, r.Day, r.CreatedAt.UTC().Format(time.RFC3339), r.Note, i,
		)
		if err != nil {
			return fmt.Errorf("insert record %s: %w", r.ID, err)
		}
	}
	return nil
}

func replaceNotes(tx *sql.Tx, notes []*models.DailyNote) error {
	if _, err := tx.Exec(`DELETE FROM daily_notes`); err != nil {
		return fmt.Errorf("clear daily notes: %w", err)
	}
	for _, n := range notes {
		_, err := tx.Exec(
			`INSERT INTO daily_notes (id, item_id, day, text, updated_at) VALUES (?, ?, ?, ?, ?)`,
			n.ID, n.ItemID, n.Day, n.Text, n.UpdatedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("insert daily note %s: %w", n.ID, err)
		}
	}
	return nil
}

func (s *SQLiteStore) NotificationSettings() (NotificationSettings, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'notifications'`).Scan(&value)
	if err == sql.ErrNoRows {
		return DefaultNotificationSettings, nil
	}
	if err != nil {
		return DefaultNotificationSettings, fmt.Errorf("load notification settings: %w", err)
	}
	settings := DefaultNotificationSettings
	if err := json.Unmarshal([]byte(value), &settings); err != nil {
		return DefaultNotificationSettings, fmt.Errorf("decode notification settings: %w", err)
	}
	return settings, nil
}

func (s *SQLiteStore) SaveNotificationSettings(settings NotificationSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal notification settings: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO settings (key, value) VALUES ('notifications', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		string(data),
	)
	return err
}

func (s *SQLiteStore) TimerState(itemID string) (int64, bool, error) {
	var startAt int64
	err := s.db.QueryRow(`SELECT start_at FROM timer_state WHERE item_id = ?`, itemID).Scan(&startAt)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("timer state %s: %w", itemID, err)
	}
	return startAt, true, nil
}

func (s *SQLiteStore) SetTimerState(itemID string, startAt int64) error {
	_, err := s.db.Exec(
		`INSERT INTO timer_state (item_id, start_at) VALUES (?, ?)
		 ON CONFLICT(item_id) DO UPDATE SET start_at = excluded.start_at`,
		itemID, startAt,
	)
	return err
}

func (s *SQLiteStore) ClearTimerState(itemID string) error {
	_, err := s.db.Exec(`DELETE FROM timer_state WHERE item_id = ?`, itemID)
	return err
}
