// ABOUTME: Settings view for notifications and item appearance via huh forms.
// ABOUTME: Storage backend and cutoff hour are shown read-only from config.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/config"
	"github.com/skosaka/tsumiage/internal/notify"
	"github.com/skosaka/tsumiage/internal/storage"
	"github.com/skosaka/tsumiage/internal/tracker"
)

type settingsModel struct {
	trk    *tracker.Tracker
	cfg    *config.Config
	mgr    *notify.Manager
	width  int
	height int

	settings storage.NotificationSettings

	formActive bool
	form       *huh.Form

	// Form field pointers (survive value copies)
	notifyEnabled *bool
	notifyTime    *string
}

func newSettingsModel(trk *tracker.Tracker, cfg *config.Config) settingsModel {
	enabled := false
	timeStr := storage.DefaultNotificationSettings.Time
	return settingsModel{
		trk:           trk,
		cfg:           cfg,
		mgr:           notify.NewManager(trk.Repo(), &notify.LogScheduler{W: io.Discard}),
		notifyEnabled: &enabled,
		notifyTime:    &timeStr,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	settings storage.NotificationSettings
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		settings, err := s.mgr.Settings()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return settingsDataMsg{settings: settings}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.settings = msg.settings
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.New):
			return s.showForm()
		}
	}
	return s, nil
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	*s.notifyEnabled = s.settings.Enabled
	*s.notifyTime = s.settings.Time
	if *s.notifyTime == "" {
		*s.notifyTime = storage.DefaultNotificationSettings.Time
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Daily reminder").Value(s.notifyEnabled),
			huh.NewInput().Title("Reminder time (HH:MM)").Value(s.notifyTime).
				Validate(func(v string) error {
					_, _, err := notify.ParseTime(v)
					return err
				}),
		).Title("Notifications"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		return s.saveSettings()
	}

	return s, cmd
}

func (s settingsModel) saveSettings() (settingsModel, tea.Cmd) {
	if *s.notifyEnabled {
		granted, err := s.mgr.Enable(*s.notifyTime)
		if err != nil {
			return s, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		if !granted {
			return s, tea.Batch(s.refresh(), statusCmd("Notification permission denied", true))
		}
		return s, tea.Batch(s.refresh(), statusCmd("Daily reminder enabled", false))
	}

	if err := s.mgr.Disable(); err != nil {
		return s, statusCmd(fmt.Sprintf("Error: %v", err), true)
	}
	return s, tea.Batch(s.refresh(), statusCmd("Daily reminder disabled", false))
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	title := titleStyle.Render("Settings")

	notifyVal := errorStyle.Render("off")
	if s.settings.Enabled {
		notifyVal = successStyle.Render("on at " + s.settings.Time)
	}

	rows := []string{
		title,
		"",
		row("Daily reminder", notifyVal),
		row("Storage backend", highlightStyle.Render(s.cfg.GetBackend())),
		row("Data directory", mutedStyle.Render(s.cfg.GetDataDir())),
		row("Day cutoff hour", highlightStyle.Render(fmt.Sprintf("%02d:00", s.cfg.GetCutoffHour()))),
		row("Auto break switch", highlightStyle.Render(fmt.Sprintf("%v", s.cfg.GetAutoSwitchBreak()))),
		"",
		mutedStyle.Render("Press enter to edit notifications. Backend and cutoff"),
		mutedStyle.Render("live in " + config.GetConfigPath()),
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func row(label, value string) string {
	l := lipgloss.NewStyle().Width(20).Render(label)
	return fmt.Sprintf("  %s %s", l, value)
}
