// ABOUTME: Pomodoro view driving the work/break machine against one item.
// ABOUTME: Completed or stopped work phases are recorded as progress.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/pomodoro"
	"github.com/skosaka/tsumiage/internal/tracker"
)

// pomodoroTarget carries the currently bound item across model copies so
// the machine callbacks always record against the latest selection.
// recordErr holds a persistence failure from a callback until the
// update loop surfaces it.
type pomodoroTarget struct {
	itemID    string
	itemName  string
	recordErr error
}

type pomodoroModel struct {
	trk    *tracker.Tracker
	width  int
	height int

	machine *pomodoro.Machine
	target  *pomodoroTarget

	items        []*models.Item
	picking      bool
	pickerCursor int

	formActive bool // reserved for future forms, keeps app delegation uniform
}

func newPomodoroModel(trk *tracker.Tracker, autoSwitchBreak bool) pomodoroModel {
	target := &pomodoroTarget{}
	machine := pomodoro.New()
	machine.AutoSwitchBreak = autoSwitchBreak
	machine.OnWorkComplete = func(seconds int) {
		if target.itemID == "" {
			return
		}
		if _, err := trk.AddRecord(target.itemID, int64(seconds), "ポモドーロ", ""); err != nil {
			target.recordErr = err
		}
	}
	machine.OnStopWork = func(seconds int) {
		if target.itemID == "" {
			return
		}
		if _, err := trk.AddRecord(target.itemID, int64(seconds), "ポモドーロ（中断）", ""); err != nil {
			target.recordErr = err
		}
	}

	return pomodoroModel{
		trk:     trk,
		machine: machine,
		target:  target,
	}
}

func (p *pomodoroModel) setSize(w, h int) {
	p.width = w
	p.height = h
}

type pomodoroItemsMsg struct {
	items []*models.Item
}

func (p pomodoroModel) loadItems() tea.Cmd {
	return func() tea.Msg {
		items, err := p.trk.Items()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		durations := items[:0]
		for _, it := range items {
			if it.Kind == models.KindDuration {
				durations = append(durations, it)
			}
		}
		return pomodoroItemsMsg{items: durations}
	}
}

func (p pomodoroModel) update(msg tea.Msg) (pomodoroModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pomodoroItemsMsg:
		p.items = msg.items
		p.pickerCursor = clampCursor(p.pickerCursor, len(p.items))
		return p, nil

	case tickMsg:
		before := p.machine.Phase
		p.machine.Tick()
		if cmd := p.takeRecordErr(); cmd != nil {
			return p, cmd
		}
		if before == pomodoro.Work && p.machine.Phase == pomodoro.Break {
			return p, statusCmd("お疲れさま！休憩しましょう", false)
		}
		return p, nil

	case tea.KeyMsg:
		if p.picking {
			return p.updatePicker(msg)
		}

		switch {
		case key.Matches(msg, keys.Start):
			switch p.machine.Phase {
			case pomodoro.Idle:
				if p.target.itemID == "" {
					if len(p.items) == 0 {
						return p, statusCmd("No time items. Create one on Home first.", true)
					}
					p.picking = true
					p.pickerCursor = 0
					return p, nil
				}
				p.machine.Start()
			default:
				if p.machine.Running {
					p.machine.Pause()
				} else {
					p.machine.Resume()
				}
			}
			return p, nil

		case key.Matches(msg, keys.Stop):
			if p.machine.Phase != pomodoro.Idle {
				p.machine.Stop()
				if cmd := p.takeRecordErr(); cmd != nil {
					return p, cmd
				}
				return p, statusCmd("Pomodoro stopped", false)
			}

		case key.Matches(msg, keys.Count):
			// Skip to the next phase
			if p.machine.Phase != pomodoro.Idle {
				p.machine.Skip()
				return p, nil
			}

		case key.Matches(msg, keys.Enter):
			if p.machine.Phase == pomodoro.Idle {
				p.picking = true
				p.pickerCursor = 0
				return p, p.loadItems()
			}
		}
	}
	return p, nil
}

// takeRecordErr surfaces a record write failure from a machine
// callback as a status message, clearing it so it shows once.
func (p pomodoroModel) takeRecordErr() tea.Cmd {
	if p.target.recordErr == nil {
		return nil
	}
	err := p.target.recordErr
	p.target.recordErr = nil
	return statusCmd(fmt.Sprintf("記録に失敗: %v", err), true)
}

func (p pomodoroModel) updatePicker(msg tea.KeyMsg) (pomodoroModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if p.pickerCursor > 0 {
			p.pickerCursor--
		}
	case key.Matches(msg, keys.Down):
		if p.pickerCursor < len(p.items)-1 {
			p.pickerCursor++
		}
	case key.Matches(msg, keys.Enter):
		if p.pickerCursor < len(p.items) {
			it := p.items[p.pickerCursor]
			p.target.itemID = it.ID
			p.target.itemName = it.Name
			p.picking = false
			p.machine.Start()
		}
	case key.Matches(msg, keys.Back):
		p.picking = false
	}
	return p, nil
}

func (p pomodoroModel) view() string {
	w := p.width - 4

	if p.picking {
		return p.renderPicker(w)
	}

	title := titleStyle.Render("Pomodoro")
	if p.target.itemName != "" {
		title += mutedStyle.Render("  →  ") + highlightStyle.Render(p.target.itemName)
	}

	var timeDisplay, phaseLabel, controls string
	switch p.machine.Phase {
	case pomodoro.Idle:
		timeDisplay = timerStyle.Width(w - 6).Render(p.machine.Clock())
		phaseLabel = mutedStyle.Render("Ready to start")
		controls = mutedStyle.Render("s: start  enter: pick item  q: quit")
	case pomodoro.Work:
		style := accentStyle
		phaseLabel = accentStyle.Bold(true).Render("作業中")
		if !p.machine.Running {
			style = warningStyle
			phaseLabel = warningStyle.Bold(true).Render("一時停止")
		}
		timeDisplay = style.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(p.machine.Clock())
		controls = mutedStyle.Render("s: pause/resume  space: skip  x: stop")
	case pomodoro.Break:
		style := successStyle
		phaseLabel = successStyle.Bold(true).Render("休憩中")
		if !p.machine.Running {
			style = warningStyle
			phaseLabel = warningStyle.Bold(true).Render("休憩（停止中）")
		}
		timeDisplay = style.Bold(true).Width(w - 6).Align(lipgloss.Center).Render(p.machine.Clock())
		controls = mutedStyle.Render("s: pause/resume  space: skip break  x: stop")
	}

	sessions := mutedStyle.Render(fmt.Sprintf("完了セッション: %d", p.machine.SessionsCompleted))
	bar := p.renderBar(w - 10)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		timeDisplay,
		phaseLabel,
		"",
		bar,
		sessions,
		"",
		controls,
	)

	style := panelStyle
	if p.machine.Running {
		style = activePanelStyle
	}
	return style.Width(w).Render(content)
}

func (p pomodoroModel) renderBar(w int) string {
	if w < 10 {
		w = 10
	}
	filled := int(float64(w) * (1 - p.machine.Progress()))
	if filled > w {
		filled = w
	}
	style := accentStyle
	if p.machine.Phase == pomodoro.Break {
		style = successStyle
	}
	return style.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", w-filled))
}

func (p pomodoroModel) renderPicker(w int) string {
	title := titleStyle.Render("Select Item")

	var rows []string
	rows = append(rows, title)
	for i, it := range p.items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("●")
		cursor := "  "
		style := normalItemStyle
		if i == p.pickerCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, dot, it.Name)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: select  esc: cancel"))

	return activePanelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
