// ABOUTME: Stats view with per-item totals, levels and a 7-day bar chart.
// ABOUTME: Duration items chart in hours, count items in occurrences.
package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/tracker"
)

type statsModel struct {
	trk    *tracker.Tracker
	width  int
	height int

	items  []*models.Item
	totals map[string]map[string]int64 // day -> itemID -> total
	streak int
	offset int // 7-day blocks back from today (0 = current)

	chart barchart.Model
}

func newStatsModel(trk *tracker.Tracker) statsModel {
	return statsModel{
		trk:    trk,
		totals: map[string]map[string]int64{},
		chart:  barchart.New(60, 12),
	}
}

func (s *statsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type statsDataMsg struct {
	items  []*models.Item
	totals map[string]map[string]int64
	streak int
}

func (s statsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		items, err := s.trk.Items()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		records, err := s.trk.Records()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}

		totals := make(map[string]map[string]int64)
		for _, r := range records {
			if totals[r.Day] == nil {
				totals[r.Day] = make(map[string]int64)
			}
			totals[r.Day][r.ItemID] += r.Value
		}

		streak, err := s.trk.Streak()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return statsDataMsg{items: items, totals: totals, streak: streak}
	}
}

func (s statsModel) update(msg tea.Msg) (statsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case statsDataMsg:
		s.items = msg.items
		s.totals = msg.totals
		s.streak = msg.streak
		s.buildChart()
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			s.offset++
			s.buildChart()
			return s, nil
		case key.Matches(msg, keys.Right):
			if s.offset > 0 {
				s.offset--
			}
			s.buildChart()
			return s, nil
		}
	}
	return s, nil
}

// chartDays returns the 7 day keys of the shown window, oldest first.
func (s statsModel) chartDays() []string {
	end := daykey.Shift(s.trk.Today(), -7*s.offset)
	days := make([]string, 7)
	for i := 0; i < 7; i++ {
		days[i] = daykey.Shift(end, i-6)
	}
	return days
}

func (s *statsModel) buildChart() {
	chartWidth := s.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if s.height > 30 {
		chartHeight = 16
	}

	s.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, day := range s.chartDays() {
		label := day[5:] // MM-DD

		var values []barchart.BarValue
		for _, it := range s.items {
			v := s.totals[day][it.ID]
			if v == 0 {
				continue
			}
			amount := float64(v)
			if it.Kind == models.KindDuration {
				amount = amount / 3600.0
			}
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color))
			values = append(values, barchart.BarValue{
				Name:  it.Name,
				Value: amount,
				Style: style,
			})
		}

		if len(values) == 0 {
			values = []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}}
		}

		bars = append(bars, barchart.BarData{
			Label:  label,
			Values: values,
		})
	}

	s.chart.PushAll(bars)
	s.chart.Draw()
}

func (s statsModel) view() string {
	w := s.width - 4

	days := s.chartDays()
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Stats"), "  ",
		titleStyle.Render(fmt.Sprintf("🔥 %d日連続", s.streak)), "  ",
		mutedStyle.Render(fmt.Sprintf("%s — %s", models.FormatDate(days[0]), models.FormatDate(days[6]))),
	)

	chartView := s.chart.View()
	tableView := s.renderTotals(w)
	legend := s.renderLegend()
	nav := mutedStyle.Render("  ←/→: navigate weeks")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", chartView, "", legend, "", tableView, "", nav,
		),
	)
}

func (s statsModel) renderTotals(w int) string {
	if len(s.items) == 0 {
		return mutedStyle.Render("  No items yet")
	}

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-16s %-14s %s", "Item", "Total", "Level"))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 48))))

	for _, it := range s.items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("●")
		level := models.LevelInfo(it.Kind, it.TotalValue)
		rows = append(rows, fmt.Sprintf("  %s %-14s %-14s %s",
			dot, it.Name, it.FormatValue(it.TotalValue), level.Current.Title,
		))
	}

	return strings.Join(rows, "\n")
}

func (s statsModel) renderLegend() string {
	var items []string
	for _, it := range s.items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, it.Name))
	}
	if len(items) == 0 {
		return ""
	}
	return "  " + strings.Join(items, "  ")
}
