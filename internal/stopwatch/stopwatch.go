// ABOUTME: Free-running stopwatch for plain timed items.
// ABOUTME: The persisted start instant is the source of truth; elapsed time is a wall-clock delta.
package stopwatch

import (
	"fmt"
	"time"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/tracker"
)

// Stopwatch counts elapsed seconds upward for one item. The start
// instant lives in the repository, not in memory, so elapsed time
// survives process suspension and restarts: every resume recomputes
// elapsed = now - startedAt from the stored value.
type Stopwatch struct {
	trk    *tracker.Tracker
	itemID string
	now    func() time.Time
}

// New creates a stopwatch bound to one item.
func New(trk *tracker.Tracker, itemID string) *Stopwatch {
	return &Stopwatch{trk: trk, itemID: itemID, now: time.Now}
}

// WithClock overrides the time source, for tests.
func (s *Stopwatch) WithClock(now func() time.Time) *Stopwatch {
	s.now = now
	return s
}

// Start persists the start instant. Starting an already-running
// stopwatch is a no-op so a double tap cannot reset the origin.
func (s *Stopwatch) Start() error {
	if _, running, err := s.trk.Repo().TimerState(s.itemID); err != nil {
		return err
	} else if running {
		return nil
	}
	startAt := s.now().UnixMilli()
	if err := s.trk.Repo().SetTimerState(s.itemID, startAt); err != nil {
		return fmt.Errorf("start stopwatch: %w", err)
	}
	return nil
}

// Running reports whether a start instant is persisted.
func (s *Stopwatch) Running() (bool, error) {
	_, running, err := s.trk.Repo().TimerState(s.itemID)
	return running, err
}

// Elapsed resynchronizes from the persisted start instant. Zero when
// the stopwatch is not running.
func (s *Stopwatch) Elapsed() (time.Duration, error) {
	startAt, running, err := s.trk.Repo().TimerState(s.itemID)
	if err != nil || !running {
		return 0, err
	}
	elapsed := s.now().Sub(time.UnixMilli(startAt))
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, nil
}

// Stop commits the elapsed whole seconds as one record and clears the
// persisted state. Nothing is recorded for a zero-second run.
func (s *Stopwatch) Stop() (*models.Record, error) {
	elapsed, err := s.Elapsed()
	if err != nil {
		return nil, err
	}
	running, err := s.Running()
	if err != nil {
		return nil, err
	}
	if !running {
		return nil, nil
	}
	if err := s.trk.Repo().ClearTimerState(s.itemID); err != nil {
		return nil, fmt.Errorf("stop stopwatch: %w", err)
	}
	seconds := int64(elapsed.Seconds())
	if seconds <= 0 {
		return nil, nil
	}
	record, err := s.trk.AddRecord(s.itemID, seconds, "", "")
	if err != nil {
		return nil, fmt.Errorf("commit stopwatch: %w", err)
	}
	return record, nil
}

// Reset discards the run without recording anything.
func (s *Stopwatch) Reset() error {
	if err := s.trk.Repo().ClearTimerState(s.itemID); err != nil {
		return fmt.Errorf("reset stopwatch: %w", err)
	}
	return nil
}
