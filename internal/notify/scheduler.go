// ABOUTME: Scheduler implementations: a terminal stub and a test fake.
// ABOUTME: The stub grants permission and prints what a platform scheduler would do.
package notify

import (
	"fmt"
	"io"
)

// LogScheduler writes scheduling actions to a writer instead of
// talking to a platform notification service.
type LogScheduler struct {
	W io.Writer
}

func (s *LogScheduler) RequestPermission() (bool, error) {
	return true, nil
}

func (s *LogScheduler) ScheduleDaily(hour, minute int, payload string) error {
	_, err := fmt.Fprintf(s.W, "reminder scheduled daily at %02d:%02d: %s\n", hour, minute, payload)
	return err
}

func (s *LogScheduler) CancelAll() error {
	return nil
}
