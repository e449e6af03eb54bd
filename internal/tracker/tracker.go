// ABOUTME: The tracking engine: single-writer service over a storage Repository.
// ABOUTME: All mutation funnels through here to keep item totals and record sums in step.
package tracker

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/storage"
)

// ErrItemNotFound is returned when an operation references an item id
// that no longer exists. Callers treat it as a no-op, not a crash.
var ErrItemNotFound = errors.New("item not found")

// Tracker owns all reads and writes of the stacking collections.
// Mutations are serialized by an internal mutex: each one runs against
// the latest stored state and writes back before the next begins, so a
// record insertion and its total-value increment are always observed
// together.
type Tracker struct {
	mu         sync.Mutex
	repo       storage.Repository
	cutoffHour int
	now        func() time.Time
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithCutoffHour overrides the logical-day cutoff hour (default 6).
func WithCutoffHour(h int) Option {
	return func(t *Tracker) { t.cutoffHour = h }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// New creates a Tracker over the given repository.
func New(repo storage.Repository, opts ...Option) *Tracker {
	t := &Tracker{
		repo:       repo,
		cutoffHour: daykey.DefaultCutoffHour,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// CutoffHour returns the configured logical-day cutoff hour.
func (t *Tracker) CutoffHour() int {
	return t.cutoffHour
}

// Today returns the current logical day key.
func (t *Tracker) Today() string {
	return daykey.Of(t.now(), t.cutoffHour)
}

// Repo exposes the underlying repository, for stopwatch state and
// notification settings.
func (t *Tracker) Repo() storage.Repository {
	return t.repo
}

// Items returns all items in display order.
func (t *Tracker) Items() ([]*models.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadItems()
}

func (t *Tracker) loadItems() ([]*models.Item, error) {
	items, err := t.repo.LoadItems()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Order < items[j].Order })
	return items, nil
}

// loadRecords reads all records with legacy day keys normalized
// through the cutoff rule. Unparseable values pass through unchanged.
func (t *Tracker) loadRecords() ([]*models.Record, error) {
	records, err := t.repo.LoadRecords()
	if err != nil {
		return nil, err
	}
	for _, r := range records {
		r.Day = daykey.Normalize(r.Day, r.CreatedAt, t.cutoffHour)
	}
	return records, nil
}

// Item returns one item by exact id.
func (t *Tracker) Item(id string) (*models.Item, error) {
	items, err := t.Items()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// FindItem resolves an item by exact name, exact id, or id prefix.
func (t *Tracker) FindItem(nameOrID string) (*models.Item, error) {
	items, err := t.Items()
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		if it.Name == nameOrID || it.ID == nameOrID {
			return it, nil
		}
	}
	var match *models.Item
	for _, it := range items {
		if strings.HasPrefix(it.ID, nameOrID) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous item %q", nameOrID)
			}
			match = it
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, nameOrID)
	}
	return match, nil
}

// AddItem creates a new item at the end of the display order.
func (t *Tracker) AddItem(name string, kind models.Kind, icon, color string) (*models.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.loadItems()
	if err != nil {
		return nil, err
	}
	item := models.NewItem(name, kind, icon, color)
	item.Order = len(items)
	items = append(items, item)
	if err := t.repo.SaveItems(items); err != nil {
		return nil, fmt.Errorf("save items: %w", err)
	}
	return item, nil
}

// RenameItem updates an item's display name.
func (t *Tracker) RenameItem(id, name string) error {
	return t.updateItem(id, func(it *models.Item) {
		it.Name = name
	})
}

// SetAppearance updates an item's icon and color.
func (t *Tracker) SetAppearance(id, icon, color string) error {
	return t.updateItem(id, func(it *models.Item) {
		if icon != "" {
			it.Icon = icon
		}
		if color != "" {
			it.Color = color
		}
	})
}

// SetReminder sets or clears an item's daily reminder.
func (t *Tracker) SetReminder(id string, r *models.Reminder) error {
	return t.updateItem(id, func(it *models.Item) {
		it.Reminder = r
	})
}

func (t *Tracker) updateItem(id string, apply func(*models.Item)) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.loadItems()
	if err != nil {
		return err
	}
	for _, it := range items {
		if it.ID == id {
			apply(it)
			it.UpdatedAt = t.now()
			if err := t.repo.SaveItems(items); err != nil {
				return fmt.Errorf("save items: %w", err)
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, id)
}

// DeleteItem removes an item and cascades deletion of its records and
// daily notes in one atomic persistence step.
func (t *Tracker) DeleteItem(id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.loadItems()
	if err != nil {
		return err
	}
	var kept []*models.Item
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		kept = append(kept, it)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	for i, it := range kept {
		it.Order = i
	}
	if kept == nil {
		kept = []*models.Item{}
	}

	records, err := t.loadRecords()
	if err != nil {
		return err
	}
	keptRecords := []*models.Record{}
	for _, r := range records {
		if r.ItemID != id {
			keptRecords = append(keptRecords, r)
		}
	}

	notes, err := t.repo.LoadNotes()
	if err != nil {
		return err
	}
	keptNotes := []*models.DailyNote{}
	for _, n := range notes {
		if n.ItemID != id {
			keptNotes = append(keptNotes, n)
		}
	}

	if err := t.repo.SaveAll(kept, keptRecords, keptNotes); err != nil {
		return fmt.Errorf("delete item %s: %w", id, err)
	}
	_ = t.repo.ClearTimerState(id)
	return nil
}

// Reorder reassigns dense display orders following the given id
// sequence. Items absent from the sequence keep their relative order
// after the listed ones.
func (t *Tracker) Reorder(ids []string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.loadItems()
	if err != nil {
		return err
	}
	pos := make(map[string]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}
	sort.SliceStable(items, func(i, j int) bool {
		pi, iOK := pos[items[i].ID]
		pj, jOK := pos[items[j].ID]
		switch {
		case iOK && jOK:
			return pi < pj
		case iOK:
			return true
		case jOK:
			return false
		default:
			return false
		}
	})
	now := t.now()
	for i, it := range items {
		if it.Order != i {
			it.Order = i
			it.UpdatedAt = now
		}
	}
	if err := t.repo.SaveItems(items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}

// RecomputeTotals rebuilds every item's TotalValue from its records.
// Consistency repair; a no-op when the invariant already holds.
func (t *Tracker) RecomputeTotals() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	items, err := t.loadItems()
	if err != nil {
		return err
	}
	records, err := t.loadRecords()
	if err != nil {
		return err
	}
	sums := make(map[string]int64)
	for _, r := range records {
		sums[r.ItemID] += r.Value
	}
	changed := false
	for _, it := range items {
		if it.TotalValue != sums[it.ID] {
			it.TotalValue = sums[it.ID]
			it.UpdatedAt = t.now()
			changed = true
		}
	}
	if !changed {
		return nil
	}
	if err := t.repo.SaveItems(items); err != nil {
		return fmt.Errorf("save items: %w", err)
	}
	return nil
}
