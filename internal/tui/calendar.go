// ABOUTME: Calendar view showing a month grid with recorded days marked.
// ABOUTME: Left/right move between months, recorded days carry the accent color.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/tracker"
)

type calendarModel struct {
	trk    *tracker.Tracker
	width  int
	height int

	year     int
	month    time.Month
	recorded map[string]bool
}

func newCalendarModel(trk *tracker.Tracker) calendarModel {
	now := time.Now()
	return calendarModel{
		trk:      trk,
		year:     now.Year(),
		month:    now.Month(),
		recorded: map[string]bool{},
	}
}

func (c *calendarModel) setSize(w, h int) {
	c.width = w
	c.height = h
}

type calendarDataMsg struct {
	recorded map[string]bool
}

func (c calendarModel) refresh() tea.Cmd {
	year, month := c.year, c.month
	return func() tea.Msg {
		recorded, err := c.trk.RecordedDays(year, month)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return calendarDataMsg{recorded: recorded}
	}
}

func (c calendarModel) update(msg tea.Msg) (calendarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case calendarDataMsg:
		c.recorded = msg.recorded
		return c, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			c.month--
			if c.month < time.January {
				c.month = time.December
				c.year--
			}
			return c, c.refresh()
		case key.Matches(msg, keys.Right):
			c.month++
			if c.month > time.December {
				c.month = time.January
				c.year++
			}
			return c, c.refresh()
		}
	}
	return c, nil
}

func (c calendarModel) view() string {
	w := c.width - 4

	title := titleStyle.Render(fmt.Sprintf("%d年%d月", c.year, int(c.month)))

	var rows []string
	rows = append(rows, title, "")
	rows = append(rows, mutedStyle.Render(" 日  月  火  水  木  金  土"))

	first := time.Date(c.year, c.month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	today := c.trk.Today()

	week := make([]string, 7)
	col := int(first.Weekday())
	for i := 0; i < col; i++ {
		week[i] = "   "
	}
	for day := 1; day <= daysInMonth; day++ {
		dayKey := fmt.Sprintf("%04d-%02d-%02d", c.year, int(c.month), day)
		cell := fmt.Sprintf("%3d", day)
		switch {
		case dayKey == today:
			cell = accentStyle.Bold(true).Render(cell)
		case c.recorded[dayKey]:
			cell = successStyle.Render(cell)
		default:
			cell = mutedStyle.Render(cell)
		}
		week[col] = cell
		col++
		if col == 7 {
			rows = append(rows, strings.Join(week, " "))
			week = make([]string, 7)
			col = 0
		}
	}
	if col > 0 {
		for i := col; i < 7; i++ {
			week[i] = "   "
		}
		rows = append(rows, strings.Join(week, " "))
	}

	count := 0
	for _, ok := range c.recorded {
		if ok {
			count++
		}
	}
	rows = append(rows, "")
	rows = append(rows, successStyle.Render(fmt.Sprintf("  記録日数: %d日", count)))
	rows = append(rows, mutedStyle.Render("  ←/→: change month"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
