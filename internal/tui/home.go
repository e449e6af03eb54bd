// ABOUTME: Home view listing habit items with today's value, streak and quote.
// ABOUTME: Enter opens an item detail with stopwatch / counter controls.
package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/skosaka/tsumiage/internal/daykey"
	"github.com/skosaka/tsumiage/internal/models"
	"github.com/skosaka/tsumiage/internal/quotes"
	"github.com/skosaka/tsumiage/internal/stopwatch"
	"github.com/skosaka/tsumiage/internal/tracker"
)

type homeModel struct {
	trk    *tracker.Tracker
	width  int
	height int

	items     []*models.Item
	todayVals map[string]int64
	streak    int
	cursor    int

	// Detail state
	detail  bool
	groups  []models.DayGroup
	running bool
	elapsed time.Duration

	formActive bool
	form       *huh.Form
	formType   string // "item", "goal", "note"

	// Form field pointers (survive value copies)
	formName     *string
	formKind     *string
	formIcon     *string
	formColor    *string
	formTarget   *string
	formDeadline *string
	formNote     *string
}

func newHomeModel(trk *tracker.Tracker) homeModel {
	name, kind, icon, color := "", string(models.KindDuration), models.IconOptions[0], models.ColorOptions[0]
	target, deadline, note := "", "", ""
	return homeModel{
		trk:          trk,
		todayVals:    map[string]int64{},
		formName:     &name,
		formKind:     &kind,
		formIcon:     &icon,
		formColor:    &color,
		formTarget:   &target,
		formDeadline: &deadline,
		formNote:     &note,
	}
}

func (h homeModel) Init() tea.Cmd {
	return h.loadData()
}

func (h *homeModel) setSize(w, hh int) {
	h.width = w
	h.height = hh
}

type homeDataMsg struct {
	items     []*models.Item
	todayVals map[string]int64
	streak    int
}

type detailDataMsg struct {
	groups  []models.DayGroup
	running bool
	elapsed time.Duration
}

func (h homeModel) loadData() tea.Cmd {
	return func() tea.Msg {
		items, err := h.trk.Items()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		vals := make(map[string]int64, len(items))
		for _, it := range items {
			v, err := h.trk.TodayValue(it.ID)
			if err != nil {
				return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
			}
			vals[it.ID] = v
		}
		streak, err := h.trk.Streak()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return homeDataMsg{items: items, todayVals: vals, streak: streak}
	}
}

func (h homeModel) loadDetail() tea.Cmd {
	item := h.selected()
	if item == nil {
		return nil
	}
	return func() tea.Msg {
		groups, err := h.trk.GroupByDay(item.ID, 7)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		sw := stopwatch.New(h.trk, item.ID)
		running, err := sw.Running()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		var elapsed time.Duration
		if running {
			elapsed, _ = sw.Elapsed()
		}
		return detailDataMsg{groups: groups, running: running, elapsed: elapsed}
	}
}

func (h homeModel) selected() *models.Item {
	if h.cursor < 0 || h.cursor >= len(h.items) {
		return nil
	}
	return h.items[h.cursor]
}

func (h homeModel) update(msg tea.Msg) (homeModel, tea.Cmd) {
	if h.formActive && h.form != nil {
		return h.updateForm(msg)
	}

	switch msg := msg.(type) {
	case homeDataMsg:
		h.items = msg.items
		h.todayVals = msg.todayVals
		h.streak = msg.streak
		h.cursor = clampCursor(h.cursor, len(h.items))
		return h, nil

	case detailDataMsg:
		h.groups = msg.groups
		h.running = msg.running
		h.elapsed = msg.elapsed
		return h, nil

	case tickMsg:
		if h.detail && h.running {
			if item := h.selected(); item != nil {
				sw := stopwatch.New(h.trk, item.ID)
				if e, err := sw.Elapsed(); err == nil {
					h.elapsed = e
				}
			}
		}
		return h, nil

	case tea.KeyMsg:
		if h.detail {
			return h.updateDetail(msg)
		}
		return h.updateList(msg)
	}
	return h, nil
}

func (h homeModel) updateList(msg tea.KeyMsg) (homeModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if h.cursor > 0 {
			h.cursor--
		}
	case key.Matches(msg, keys.Down):
		if h.cursor < len(h.items)-1 {
			h.cursor++
		}
	case key.Matches(msg, keys.Enter):
		if h.selected() != nil {
			h.detail = true
			return h, h.loadDetail()
		}
	case key.Matches(msg, keys.New):
		return h.showItemForm()
	case key.Matches(msg, keys.Goal):
		if h.selected() != nil {
			return h.showGoalForm()
		}
	case key.Matches(msg, keys.Delete):
		if item := h.selected(); item != nil {
			if err := h.trk.DeleteItem(item.ID); err != nil {
				return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
			}
			return h, tea.Batch(h.loadData(), statusCmd(fmt.Sprintf("Deleted %q", item.Name), false))
		}
	}
	return h, nil
}

func (h homeModel) updateDetail(msg tea.KeyMsg) (homeModel, tea.Cmd) {
	item := h.selected()
	if item == nil {
		h.detail = false
		return h, nil
	}

	switch {
	case key.Matches(msg, keys.Back):
		h.detail = false
		return h, h.loadData()

	case key.Matches(msg, keys.Start):
		if item.Kind != models.KindDuration {
			return h, nil
		}
		sw := stopwatch.New(h.trk, item.ID)
		if err := sw.Start(); err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		h.running = true
		h.elapsed = 0
		return h, statusCmd("Stopwatch started", false)

	case key.Matches(msg, keys.Stop):
		if item.Kind != models.KindDuration {
			return h, nil
		}
		sw := stopwatch.New(h.trk, item.ID)
		rec, err := sw.Stop()
		if err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		h.running = false
		h.elapsed = 0
		if rec == nil {
			return h, statusCmd("Nothing to record", false)
		}
		return h, tea.Batch(
			h.loadData(), h.loadDetail(),
			statusCmd(fmt.Sprintf("Recorded %s", models.FormatTime(rec.Value)), false),
		)

	case key.Matches(msg, keys.Count):
		if item.Kind != models.KindCount {
			return h, nil
		}
		if _, err := h.trk.AddRecord(item.ID, 1, "", ""); err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		return h, tea.Batch(h.loadData(), h.loadDetail())

	case key.Matches(msg, keys.Goal):
		return h.showGoalForm()

	case key.Matches(msg, keys.Note):
		return h.showNoteForm()
	}
	return h, nil
}

// --- Forms ---

func (h homeModel) showItemForm() (homeModel, tea.Cmd) {
	*h.formName = ""
	*h.formKind = string(models.KindDuration)
	*h.formIcon = models.IconOptions[0]
	*h.formColor = models.ColorOptions[0]

	iconOpts := make([]huh.Option[string], len(models.IconOptions))
	for i, ic := range models.IconOptions {
		iconOpts[i] = huh.NewOption(iconGlyph(ic)+" "+ic, ic)
	}
	colorOpts := make([]huh.Option[string], len(models.ColorOptions))
	for i, c := range models.ColorOptions {
		colorOpts[i] = huh.NewOption(c, c)
	}

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Name").Value(h.formName),
			huh.NewSelect[string]().Title("Kind").
				Options(
					huh.NewOption("Time (stopwatch)", string(models.KindDuration)),
					huh.NewOption("Count (occurrences)", string(models.KindCount)),
				).Value(h.formKind),
			huh.NewSelect[string]().Title("Icon").Options(iconOpts...).Value(h.formIcon),
			huh.NewSelect[string]().Title("Color").Options(colorOpts...).Value(h.formColor),
		).Title("New Item"),
	).WithShowHelp(true).WithShowErrors(true)

	h.formType = "item"
	h.formActive = true
	return h, h.form.Init()
}

func (h homeModel) showGoalForm() (homeModel, tea.Cmd) {
	item := h.selected()
	if item == nil {
		return h, nil
	}

	*h.formTarget = ""
	*h.formDeadline = daykey.Shift(h.trk.Today(), 30)
	if item.Goal != nil {
		*h.formTarget = strconv.FormatInt(item.Goal.Target, 10)
		*h.formDeadline = item.Goal.Deadline
	}

	unit := "occurrences"
	if item.Kind == models.KindDuration {
		unit = "seconds"
	}

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Target ("+unit+")").Value(h.formTarget),
			huh.NewInput().Title("Deadline (YYYY-MM-DD)").Value(h.formDeadline),
		).Title("Goal for "+item.Name),
	).WithShowHelp(true).WithShowErrors(true)

	h.formType = "goal"
	h.formActive = true
	return h, h.form.Init()
}

func (h homeModel) showNoteForm() (homeModel, tea.Cmd) {
	item := h.selected()
	if item == nil {
		return h, nil
	}

	*h.formNote = ""
	if note, err := h.trk.DailyNote(item.ID, h.trk.Today()); err == nil && note != nil {
		*h.formNote = note.Text
	}

	h.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Today's note").Value(h.formNote),
		).Title("Note for "+item.Name),
	).WithShowHelp(true).WithShowErrors(true)

	h.formType = "note"
	h.formActive = true
	return h, h.form.Init()
}

func (h homeModel) updateForm(msg tea.Msg) (homeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			h.formActive = false
			h.form = nil
			return h, nil
		}
	}

	form, cmd := h.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		h.form = f
	}

	if h.form.State == huh.StateCompleted {
		h.formActive = false
		return h.submitForm()
	}

	return h, cmd
}

func (h homeModel) submitForm() (homeModel, tea.Cmd) {
	switch h.formType {
	case "item":
		name := strings.TrimSpace(*h.formName)
		if name == "" {
			return h, statusCmd("Name is required", true)
		}
		item, err := h.trk.AddItem(name, models.Kind(*h.formKind), *h.formIcon, *h.formColor)
		if err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		return h, tea.Batch(h.loadData(), statusCmd(fmt.Sprintf("Added %q", item.Name), false))

	case "goal":
		item := h.selected()
		if item == nil {
			return h, nil
		}
		target, err := strconv.ParseInt(strings.TrimSpace(*h.formTarget), 10, 64)
		if err != nil || target <= 0 {
			return h, statusCmd("Target must be a positive number", true)
		}
		if _, err := daykey.Parse(strings.TrimSpace(*h.formDeadline)); err != nil {
			return h, statusCmd("Deadline must be YYYY-MM-DD", true)
		}
		if err := h.trk.SetGoal(item.ID, target, strings.TrimSpace(*h.formDeadline)); err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		return h, tea.Batch(h.loadData(), statusCmd("Goal set", false))

	case "note":
		item := h.selected()
		if item == nil {
			return h, nil
		}
		if err := h.trk.SetDailyNote(item.ID, h.trk.Today(), *h.formNote); err != nil {
			return h, statusCmd(fmt.Sprintf("Error: %v", err), true)
		}
		return h, statusCmd("Note saved", false)
	}
	return h, nil
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

// --- Views ---

func (h homeModel) view() string {
	if h.width < 20 {
		return "Terminal too small"
	}

	w := h.width - 4

	if h.formActive && h.form != nil {
		return panelStyle.Width(w).Render(h.form.View())
	}

	if h.detail {
		return h.viewDetail(w)
	}
	return h.viewList(w)
}

func (h homeModel) viewList(w int) string {
	q := quotes.ForDay(h.trk.Today())
	quoteLine := mutedStyle.Render(fmt.Sprintf("「%s」 — %s", q.Text, q.Author))

	streakLine := titleStyle.Render(fmt.Sprintf("🔥 %d日連続", h.streak))
	header := lipgloss.JoinVertical(lipgloss.Left, streakLine, quoteLine)

	if len(h.items) == 0 {
		content := lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			mutedStyle.Render("No items yet. Press n to create one."),
		)
		return panelStyle.Width(w).Render(content)
	}

	var rows []string
	rows = append(rows, header, "")
	for i, it := range h.items {
		cursor := "  "
		style := normalItemStyle
		if i == h.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render("●")
		today := it.FormatValue(h.todayVals[it.ID])
		total := mutedStyle.Render("総計 " + it.FormatValue(it.TotalValue))
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s %-16s 今日 %-12s %s",
			cursor, dot, iconGlyph(it.Icon), it.Name, today, total)))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: open  n: new  g: goal  d: delete"))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func (h homeModel) viewDetail(w int) string {
	item := h.selected()
	if item == nil {
		return ""
	}

	title := titleStyle.Render(iconGlyph(item.Icon) + " " + item.Name)
	level := models.LevelInfo(item.Kind, item.TotalValue)
	levelLine := lipgloss.NewStyle().Foreground(lipgloss.Color(level.Current.Color)).
		Render(level.Current.Title)
	if level.Next != nil {
		levelLine += mutedStyle.Render(fmt.Sprintf("  次の称号まで %d%%", level.Progress))
	}

	var action string
	if item.Kind == models.KindDuration {
		if h.running {
			clock := timerRunningStyle.Width(w - 6).Render(models.FormatTimeDetailed(int64(h.elapsed.Seconds())))
			action = lipgloss.JoinVertical(lipgloss.Center,
				clock,
				successStyle.Render("●  計測中"),
				mutedStyle.Render("x: stop"),
			)
		} else {
			clock := timerStyle.Width(w - 6).Render("00:00:00")
			action = lipgloss.JoinVertical(lipgloss.Center,
				clock,
				mutedStyle.Render("s: start"),
			)
		}
	} else {
		today := accentStyle.Bold(true).Width(w - 6).Align(lipgloss.Center).
			Render(models.FormatCount(h.todayVals[item.ID]))
		action = lipgloss.JoinVertical(lipgloss.Center,
			today,
			mutedStyle.Render("space: +1"),
		)
	}

	var goalLine string
	if item.Goal != nil {
		p := h.trk.GoalProgressFor(item)
		goalLine = fmt.Sprintf("目標 %s まで %s (%d%%)  残り%d日",
			models.FormatDate(item.Goal.Deadline),
			item.FormatValue(p.Remaining),
			p.Percent,
			p.DaysRemaining,
		)
		goalLine = highlightStyle.Render(goalLine)
	} else {
		goalLine = mutedStyle.Render("g: 目標を設定")
	}

	var history []string
	history = append(history, titleStyle.Render("最近の記録"))
	if len(h.groups) == 0 {
		history = append(history, mutedStyle.Render("まだ記録がありません"))
	}
	for _, g := range h.groups {
		history = append(history, fmt.Sprintf("  %-10s %-12s %s",
			models.FormatDate(g.Day),
			item.FormatValue(g.Total),
			mutedStyle.Render(fmt.Sprintf("(%d件)", g.Count)),
		))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		levelLine,
		"",
		action,
		"",
		goalLine,
		"",
		strings.Join(history, "\n"),
		"",
		mutedStyle.Render("  m: note  esc: back"),
	)

	style := panelStyle
	if h.running {
		style = activePanelStyle
	}
	return style.Width(w).Render(content)
}
