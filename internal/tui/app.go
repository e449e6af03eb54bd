// ABOUTME: Root Bubble Tea model with tabbed views and a 1s tick loop.
// ABOUTME: Ticks drive the stopwatch display and the pomodoro machine.
package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/config"
	"github.com/skosaka/tsumiage/internal/tracker"
)

// App is the root Bubble Tea model.
type App struct {
	trk    *tracker.Tracker
	width  int
	height int

	activeView viewState
	showHelp   bool

	home     homeModel
	calendar calendarModel
	stats    statsModel
	pomodoro pomodoroModel
	settings settingsModel

	help   help.Model
	status string
}

func NewApp(trk *tracker.Tracker, cfg *config.Config) App {
	h := help.New()
	h.ShowAll = false

	return App{
		trk:        trk,
		activeView: viewHome,
		home:       newHomeModel(trk),
		calendar:   newCalendarModel(trk),
		stats:      newStatsModel(trk),
		pomodoro:   newPomodoroModel(trk, cfg.GetAutoSwitchBreak()),
		settings:   newSettingsModel(trk, cfg),
		help:       h,
	}
}

// WithView selects the initial tab by name. Unknown names keep Home.
func (a App) WithView(name string) App {
	for i, n := range viewNames {
		if strings.EqualFold(n, name) {
			a.activeView = viewState(i)
		}
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		a.home.Init(),
		a.pomodoro.loadItems(),
		tickCmd(),
	}
	if a.activeView != viewHome {
		cmds = append(cmds, a.refreshCurrentView())
	}
	return tea.Batch(cmds...)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.home.setSize(a.width, contentHeight)
		a.calendar.setSize(a.width, contentHeight)
		a.stats.setSize(a.width, contentHeight)
		a.pomodoro.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewHome
			return a, a.home.loadData()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewCalendar
			return a, a.calendar.refresh()
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewStats
			return a, a.stats.refresh()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewPomodoro
			return a, a.pomodoro.loadItems()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		cmds = append(cmds, tickCmd())
		// Always route ticks to the home stopwatch display
		var cmd tea.Cmd
		a.home, cmd = a.home.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		// The pomodoro machine counts down even off-screen
		a.pomodoro, cmd = a.pomodoro.update(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case statusMsg:
		a.status = msg.text
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewHome:
		a.home, cmd = a.home.update(msg)
	case viewCalendar:
		a.calendar, cmd = a.calendar.update(msg)
	case viewStats:
		a.stats, cmd = a.stats.update(msg)
	case viewPomodoro:
		a.pomodoro, cmd = a.pomodoro.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewHome:
		return a.home.formActive
	case viewSettings:
		return a.settings.formActive
	case viewPomodoro:
		return a.pomodoro.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewHome:
		return a.home.loadData()
	case viewCalendar:
		return a.calendar.refresh()
	case viewStats:
		return a.stats.refresh()
	case viewPomodoro:
		return a.pomodoro.loadItems()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewHome:
		content = a.home.view()
	case viewCalendar:
		content = a.calendar.view()
	case viewStats:
		content = a.stats.view()
	case viewPomodoro:
		content = a.pomodoro.view()
	case viewSettings:
		content = a.settings.view()
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("tsumiage")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Live indicators in the footer
	info := ""
	if a.home.detail && a.home.running {
		info = successStyle.Render(" ● " + a.home.elapsed.Truncate(time.Second).String())
	}
	if a.pomodoro.machine.Running {
		info += accentStyle.Render(" 🍅 " + a.pomodoro.machine.Clock())
	}

	left := footerStyle.Render(helpView)
	right := info + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}
