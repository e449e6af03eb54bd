// ABOUTME: Badger-backed key-value storage, the default backend.
// ABOUTME: Each collection is one JSON array under a fixed key; mutations are single transactions.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	badger "github.com/dgraph-io/badger/v3"

	"github.com/skosaka/tsumiage/internal/models"
)

const (
	keyItems          = "stack:items"
	keyRecords        = "stack:records"
	keyNotes          = "stack:daily_notes"
	keyNotifySettings = "notify:settings"
	timerKeyPrefix    = "timer:"
)

// KVStore is a Repository backed by an embedded badger database.
type KVStore struct {
	db *badger.DB
}

// OpenKV opens (or creates) the badger database at dir.
func OpenKV(dir string) (*KVStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create kv directory: %w", err)
	}
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open kv store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// OpenKVInMemory opens an in-memory store for testing.
func OpenKVInMemory() (*KVStore, error) {
	opts := badger.DefaultOptions("").WithInMemory(true).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open in-memory kv store: %w", err)
	}
	return &KVStore{db: db}, nil
}

// Close closes the underlying database.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// loadJSON reads one collection key into dest. A missing key leaves
// dest untouched so callers fall back to an empty collection.
func (s *KVStore) loadJSON(key string, dest any) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, dest)
	})
	if err == badger.ErrKeyNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) saveJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) LoadItems() ([]*models.Item, error) {
	var items []*models.Item
	if err := s.loadJSON(keyItems, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *KVStore) SaveItems(items []*models.Item) error {
	return s.saveJSON(keyItems, items)
}

func (s *KVStore) LoadRecords() ([]*models.Record, error) {
	var records []*models.Record
	if err := s.loadJSON(keyRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *KVStore) SaveRecords(records []*models.Record) error {
	return s.saveJSON(keyRecords, records)
}

func (s *KVStore) LoadNotes() ([]*models.DailyNote, error) {
	var notes []*models.DailyNote
	if err := s.loadJSON(keyNotes, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *KVStore) SaveNotes(notes []*models.DailyNote) error {
	return s.saveJSON(keyNotes, notes)
}

// SaveAll writes the given collections in a single transaction.
func (s *KVStore) SaveAll(items []*models.Item, records []*models.Record, notes []*models.DailyNote) error {
	type pending struct {
		key  string
		data []byte
	}
	var writes []pending

	add := func(key string, v any) error {
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		writes = append(writes, pending{key: key, data: data})
		return nil
	}

	if items != nil {
		if err := add(keyItems, items); err != nil {
			return err
		}
	}
	if records != nil {
		if err := add(keyRecords, records); err != nil {
			return err
		}
	}
	if notes != nil {
		if err := add(keyNotes, notes); err != nil {
			return err
		}
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for _, w := range writes {
			if err := txn.Set([]byte(w.key), w.data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save collections: %w", err)
	}
	return nil
}

func (s *KVStore) NotificationSettings() (NotificationSettings, error) {
	settings := DefaultNotificationSettings
	if err := s.loadJSON(keyNotifySettings, &settings); err != nil {
		return DefaultNotificationSettings, err
	}
	return settings, nil
}

func (s *KVStore) SaveNotificationSettings(settings NotificationSettings) error {
	return s.saveJSON(keyNotifySettings, settings)
}

func (s *KVStore) TimerState(itemID string) (int64, bool, error) {
	var startAt int64
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(timerKeyPrefix + itemID))
		if err != nil {
			return err
		}
		data, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		startAt, err = strconv.ParseInt(string(data), 10, 64)
		if err != nil {
			return err
		}
		found = true
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("timer state %s: %w", itemID, err)
	}
	return startAt, found, nil
}

func (s *KVStore) SetTimerState(itemID string, startAt int64) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(timerKeyPrefix+itemID), []byte(strconv.FormatInt(startAt, 10)))
	})
	if err != nil {
		return fmt.Errorf("set timer state %s: %w", itemID, err)
	}
	return nil
}

func (s *KVStore) ClearTimerState(itemID string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(timerKeyPrefix + itemID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("clear timer state %s: %w", itemID, err)
	}
	return nil
}
