// ABOUTME: Daily reminder settings and the scheduler contract.
// ABOUTME: OS notification delivery is an external collaborator; the shipped scheduler only logs.
package notify

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skosaka/tsumiage/internal/storage"
)

// Scheduler is the external notification collaborator. Delivery
// guarantees are the operating system's problem, not ours.
type Scheduler interface {
	RequestPermission() (bool, error)
	ScheduleDaily(hour, minute int, payload string) error
	CancelAll() error
}

// Manager ties persisted settings to a Scheduler.
type Manager struct {
	repo      storage.Repository
	scheduler Scheduler
}

// NewManager creates a Manager over the given repository and scheduler.
func NewManager(repo storage.Repository, scheduler Scheduler) *Manager {
	return &Manager{repo: repo, scheduler: scheduler}
}

// Settings returns the current notification settings.
func (m *Manager) Settings() (storage.NotificationSettings, error) {
	return m.repo.NotificationSettings()
}

// Enable turns the daily reminder on at the given time. A permission
// denial reverts the toggle and is reported to the caller; it is not
// an error.
func (m *Manager) Enable(timeStr string) (granted bool, err error) {
	hour, minute, err := ParseTime(timeStr)
	if err != nil {
		return false, err
	}
	granted, err = m.scheduler.RequestPermission()
	if err != nil {
		return false, fmt.Errorf("request permission: %w", err)
	}
	if !granted {
		return false, nil
	}
	settings := storage.NotificationSettings{Enabled: true, Time: timeStr}
	if err := m.repo.SaveNotificationSettings(settings); err != nil {
		return true, err
	}
	if err := m.scheduler.CancelAll(); err != nil {
		return true, err
	}
	if err := m.scheduler.ScheduleDaily(hour, minute, "積み上げの時間です！"); err != nil {
		return true, fmt.Errorf("schedule daily: %w", err)
	}
	return true, nil
}

// Disable turns the daily reminder off and cancels scheduled
// notifications.
func (m *Manager) Disable() error {
	settings, err := m.repo.NotificationSettings()
	if err != nil {
		return err
	}
	settings.Enabled = false
	if err := m.repo.SaveNotificationSettings(settings); err != nil {
		return err
	}
	return m.scheduler.CancelAll()
}

// SetTime changes the reminder time, rescheduling when enabled.
func (m *Manager) SetTime(timeStr string) error {
	hour, minute, err := ParseTime(timeStr)
	if err != nil {
		return err
	}
	settings, err := m.repo.NotificationSettings()
	if err != nil {
		return err
	}
	settings.Time = timeStr
	if err := m.repo.SaveNotificationSettings(settings); err != nil {
		return err
	}
	if !settings.Enabled {
		return nil
	}
	if err := m.scheduler.CancelAll(); err != nil {
		return err
	}
	return m.scheduler.ScheduleDaily(hour, minute, "積み上げの時間です！")
}

// ParseTime splits an HH:MM string.
func ParseTime(s string) (hour, minute int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want HH:MM", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", s)
	}
	return hour, minute, nil
}
