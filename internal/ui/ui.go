// Package ui renders the five-tab interface and translates key presses into
// store mutations and insight fetches.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"remindpro/internal/config"
	"remindpro/internal/insights"
	"remindpro/internal/store"
	"remindpro/internal/task"
	"remindpro/internal/views"
)

type tab int

const (
	tabDashboard tab = iota
	tabCalendar
	tabTasks
	tabInsights
	tabSettings
)

func tabs() []tab {
	return []tab{tabDashboard, tabCalendar, tabTasks, tabInsights, tabSettings}
}

func (t tab) label() string {
	switch t {
	case tabDashboard:
		return "Glance"
	case tabCalendar:
		return "Timeline"
	case tabTasks:
		return "Registry"
	case tabInsights:
		return "Insights"
	case tabSettings:
		return "System"
	default:
		return "?"
	}
}

// suggestionsMsg carries the result of an insights fetch. seq identifies the
// fetch; stale results are dropped so the last call wins.
type suggestionsMsg struct {
	seq   int
	items []insights.Suggestion
}

type Model struct {
	store  *store.Store
	cfg    config.Config
	client *insights.Client
	log    zerolog.Logger

	active    tab
	styles    styles
	status    string
	width     int
	input     textinput.Model
	searching bool
	query     string
	form      *formState

	// registry
	cursor     int
	filter     views.Filter
	confirmDel bool
	pendingDel *task.Task

	// calendar
	calYear  int
	calMonth time.Month
	selected time.Time

	// insights
	spinner     spinner.Model
	suggestions []insights.Suggestion
	loading     bool
	fetchSeq    int
}

func Run(st *store.Store, cfg config.Config, client *insights.Client, log zerolog.Logger) error {
	program := tea.NewProgram(New(st, cfg, client, log))
	_, err := program.Run()
	return err
}

func New(st *store.Store, cfg config.Config, client *insights.Client, log zerolog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "Search tasks"
	ti.CharLimit = 256
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	now := time.Now()
	return Model{
		store:    st,
		cfg:      cfg,
		client:   client,
		log:      log,
		styles:   newStyles(st.DarkMode()),
		status:   "Press 'a' to add, tab to switch views, 'q' to quit.",
		input:    ti,
		filter:   parseFilter(cfg.DefaultFilter),
		calYear:  now.Year(),
		calMonth: now.Month(),
		selected: now,
		spinner:  sp,
	}
}

func parseFilter(s string) views.Filter {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high", "priority":
		return views.FilterHigh
	case "overdue":
		return views.FilterOverdue
	case "bills":
		return views.FilterBills
	default:
		return views.FilterAll
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.form != nil {
			return m.updateFormMode(msg.String(), msg)
		}
		if m.confirmDel {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.searching {
			return m.updateSearchMode(msg.String(), msg)
		}
		return m.updateBrowse(msg.String())
	case suggestionsMsg:
		if msg.seq != m.fetchSeq {
			return m, nil
		}
		m.loading = false
		m.suggestions = msg.items
		if len(msg.items) == 0 {
			m.status = "No suggestions available"
		} else {
			m.status = fmt.Sprintf("Received %d suggestions", len(msg.items))
		}
		return m, nil
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateBrowse(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextTab:
		m.active = tab(wrapIndex(int(m.active)+1, len(tabs())))
		return m, nil
	case m.cfg.Keys.PrevTab:
		m.active = tab(wrapIndex(int(m.active)-1, len(tabs())))
		return m, nil
	case m.cfg.Keys.Add:
		return m.startForm()
	case m.cfg.Keys.DarkMode:
		return m.toggleDarkMode()
	}

	switch m.active {
	case tabCalendar:
		return m.updateCalendar(key)
	case tabTasks:
		return m.updateTasks(key)
	case tabInsights:
		return m.updateInsights(key)
	case tabSettings:
		return m.updateSettings(key)
	}
	return m, nil
}

func (m Model) toggleDarkMode() (tea.Model, tea.Cmd) {
	dark := !m.store.DarkMode()
	m.store.SetDarkMode(dark)
	m.styles = newStyles(dark)
	if dark {
		m.status = "Dark interface on"
	} else {
		m.status = "Dark interface off"
	}
	return m, nil
}

func (m Model) updateTasks(key string) (tea.Model, tea.Cmd) {
	visible := m.visibleTasks(time.Now())
	switch key {
	case m.cfg.Keys.Down, "down":
		if len(visible) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(visible))
		}
	case m.cfg.Keys.Up, "up":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(visible))
		}
	case m.cfg.Keys.Search:
		m.searching = true
		m.input.SetValue(m.query)
		m.input.Placeholder = "Search tasks"
		m.input.Focus()
		m.status = "Search: type to narrow, enter to keep, esc to clear"
	case m.cfg.Keys.Filter:
		m.filter = m.filter.Next()
		m.cursor = 0
		m.status = "Filter: " + m.filter.Label()
	case m.cfg.Keys.Toggle:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[clampCursor(m.cursor, len(visible))]
		m.store.Toggle(t.ID)
		m.status = "Toggled " + t.Title
	case m.cfg.Keys.Delete:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[clampCursor(m.cursor, len(visible))]
		m.confirmDel = true
		m.pendingDel = &t
		m.status = fmt.Sprintf("Delete %q? y/n", t.Title)
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel != nil {
			m.store.Delete(m.pendingDel.ID)
			m.status = "Deleted task"
			m.cursor = clampCursor(m.cursor, len(m.visibleTasks(time.Now())))
		}
		m.confirmDel = false
		m.pendingDel = nil
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) updateSearchMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Confirm, "enter":
		m.searching = false
		m.query = m.input.Value()
		m.input.Blur()
		m.status = "Search kept"
		return m, nil
	case m.cfg.Keys.Cancel, "esc":
		m.searching = false
		m.query = ""
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Search cleared"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.query = m.input.Value()
		m.cursor = 0
		return m, cmd
	}
}

func (m Model) updateCalendar(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Left, "left":
		m.selected = m.selected.AddDate(0, 0, -1)
	case m.cfg.Keys.Right, "right":
		m.selected = m.selected.AddDate(0, 0, 1)
	case m.cfg.Keys.Up, "up":
		m.selected = m.selected.AddDate(0, 0, -7)
	case m.cfg.Keys.Down, "down":
		m.selected = m.selected.AddDate(0, 0, 7)
	case m.cfg.Keys.PrevMonth:
		m.calYear, m.calMonth = views.PrevMonth(m.calYear, m.calMonth)
		return m, nil
	case m.cfg.Keys.NextMonth:
		m.calYear, m.calMonth = views.NextMonth(m.calYear, m.calMonth)
		return m, nil
	default:
		return m, nil
	}
	// follow the selection across month boundaries
	m.calYear = m.selected.Year()
	m.calMonth = m.selected.Month()
	return m, nil
}

func (m Model) updateInsights(key string) (tea.Model, tea.Cmd) {
	if key != m.cfg.Keys.Refresh {
		return m, nil
	}
	m.fetchSeq++
	m.loading = true
	m.status = "Analyzing obligations..."
	seq := m.fetchSeq
	m.log.Debug().Int("seq", seq).Msg("insights fetch started")
	client := m.client
	tasks := m.store.Tasks()
	fetch := func() tea.Msg {
		return suggestionsMsg{seq: seq, items: client.Suggestions(context.Background(), tasks)}
	}
	return m, tea.Batch(m.spinner.Tick, fetch)
}

func (m Model) updateSettings(key string) (tea.Model, tea.Cmd) {
	if key == m.cfg.Keys.Confirm || key == m.cfg.Keys.Toggle {
		return m.toggleDarkMode()
	}
	return m, nil
}

func (m Model) visibleTasks(now time.Time) []task.Task {
	return views.FilterTasks(m.store.Tasks(), m.query, m.filter, now)
}

func (m Model) View() string {
	now := time.Now()

	var b strings.Builder
	b.WriteString(m.styles.header.Render("RemindPro"))
	b.WriteString("  ")
	b.WriteString(m.styles.subtitle.Render("personal task & reminder manager"))
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString("\n\n")

	if m.form != nil {
		b.WriteString(m.renderForm())
	} else {
		switch m.active {
		case tabDashboard:
			b.WriteString(m.renderDashboard(now))
		case tabCalendar:
			b.WriteString(m.renderCalendar(now))
		case tabTasks:
			b.WriteString(m.renderTasks(now))
		case tabInsights:
			b.WriteString(m.renderInsights())
		case tabSettings:
			b.WriteString(m.renderSettings())
		}
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(m.renderHelp()))
	return b.String()
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(tabs()))
	for _, t := range tabs() {
		if t == m.active {
			parts = append(parts, m.styles.tabActive.Render(t.label()))
		} else {
			parts = append(parts, m.styles.tabInactive.Render(t.label()))
		}
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderDashboard(now time.Time) string {
	tasks := m.store.Tasks()
	stats := views.ComputeStats(tasks, now)
	business := views.GroupProgress(tasks, task.CategoryBusiness, task.CategoryTaxes)
	personal := views.GroupProgress(tasks, task.CategoryPersonal, task.CategoryBills)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s\n", m.styles.muted.Render("Business"), renderBar(business)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", m.styles.muted.Render("Personal"), renderBar(personal)))

	b.WriteString(fmt.Sprintf("Active obligations : %d\n", stats.Upcoming))
	overdueLine := fmt.Sprintf("Overdue            : %d", stats.Overdue)
	if stats.Overdue > 0 {
		overdueLine = m.styles.overdue.Render(overdueLine)
	}
	b.WriteString(overdueLine)
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Completed          : %d of %d\n\n", stats.Completed, stats.Total))

	b.WriteString(m.styles.header.Render("Critical Segments"))
	b.WriteString("\n")
	for _, c := range task.Categories() {
		a := task.Attributes(c)
		b.WriteString(fmt.Sprintf("%s %-9s %d open\n", m.styles.category(c).Render(a.Icon), a.Label, stats.ByCategory[c]))
	}
	return b.String()
}

func renderBar(ratio float64) string {
	const width = 20
	filled := int(ratio*width + 0.5)
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("%s%s %3.0f%%",
		strings.Repeat("█", filled), strings.Repeat("░", width-filled), ratio*100)
}

func (m Model) renderCalendar(now time.Time) string {
	tasks := m.store.Tasks()
	grid := views.BuildMonthGrid(m.calYear, m.calMonth, now, m.selected, tasks)

	var b strings.Builder
	b.WriteString(m.styles.header.Render(fmt.Sprintf("%s %d", m.calMonth, m.calYear)))
	b.WriteString("\n")
	b.WriteString(m.styles.muted.Render(" Su    Mo    Tu    We    Th    Fr    Sa"))
	b.WriteString("\n")

	for i, cell := range grid.Cells {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderCell(cell))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.subtitle.Render(m.selected.Format("January 2")))
	b.WriteString("\n")
	day := views.TasksOn(tasks, m.selected)
	if len(day) == 0 {
		b.WriteString(m.styles.muted.Render("No entries for this date"))
		b.WriteString("\n")
	}
	for _, t := range day {
		b.WriteString(m.renderTaskLine(t, false, now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderCell(cell views.Cell) string {
	if cell.Day == 0 {
		return strings.Repeat(" ", 6)
	}
	label := fmt.Sprintf("%2d", cell.Day)
	switch {
	case cell.Selected:
		label = m.styles.selected.Render(label)
	case cell.Today:
		label = m.styles.accent.Render(label)
	}
	var marks strings.Builder
	for _, c := range cell.Categories {
		marks.WriteString(m.styles.category(c).Render("•"))
	}
	if pad := 3 - len(cell.Categories); pad > 0 {
		marks.WriteString(strings.Repeat(" ", pad))
	}
	return " " + label + marks.String()
}

func (m Model) renderTasks(now time.Time) string {
	var b strings.Builder

	if m.searching {
		b.WriteString(m.input.View())
	} else if m.query != "" {
		b.WriteString("Search: " + m.query)
	} else {
		b.WriteString(m.styles.muted.Render("Press '" + m.cfg.Keys.Search + "' to search"))
	}
	b.WriteString("\n")

	pills := make([]string, 0, len(views.Filters()))
	for _, f := range views.Filters() {
		if f == m.filter {
			pills = append(pills, m.styles.pillActive.Render(f.Label()))
		} else {
			pills = append(pills, m.styles.pill.Render(f.Label()))
		}
	}
	b.WriteString(strings.Join(pills, " "))
	b.WriteString("\n\n")

	visible := m.visibleTasks(now)
	if len(visible) == 0 {
		b.WriteString(m.styles.muted.Render("No matching registry entries"))
		b.WriteString("\n")
		return b.String()
	}
	for i, t := range visible {
		b.WriteString(m.renderTaskLine(t, i == clampCursor(m.cursor, len(visible)), now))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTaskLine(t task.Task, selected bool, now time.Time) string {
	cursor := " "
	if selected {
		cursor = ">"
	}
	checkbox := "[ ]"
	if t.IsCompleted {
		checkbox = "[x]"
	}
	icon := m.styles.category(t.Category).Render(task.SubCategoryIcon(t.Category, t.SubCategory))
	due := t.DueDate.Format("2006-01-02 15:04")

	title := t.Title
	if t.IsCompleted {
		title = m.styles.done.Render(title)
	} else if t.Overdue(now) {
		due = m.styles.overdue.Render(due + " overdue")
	}

	line := fmt.Sprintf("%s %s %s %s  %s", cursor, checkbox, icon, title, m.styles.muted.Render(due))
	if t.Priority == task.PriorityHigh && !t.IsCompleted {
		line += " " + m.styles.overdue.Render("!")
	}
	if t.Recurrence != task.RecurrenceNone {
		line += " " + m.styles.muted.Render("↻"+string(t.Recurrence))
	}
	return line
}

func (m Model) renderInsights() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Intelligence Hub"))
	b.WriteString("\n")
	b.WriteString(m.styles.subtitle.Render("Proactive analysis of your schedule. Press '" + m.cfg.Keys.Refresh + "' to analyze."))
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spinner.View())
		b.WriteString(" Calibrating...\n")
		return b.String()
	}
	if len(m.suggestions) == 0 {
		b.WriteString(m.styles.muted.Render("No suggestions yet"))
		b.WriteString("\n")
		return b.String()
	}
	for _, s := range m.suggestions {
		b.WriteString(m.styles.card.Render(fmt.Sprintf("%s (%s)\n%s", s.Title, s.Urgency, s.Description)))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderSettings() string {
	dark := "Off"
	if m.store.DarkMode() {
		dark = "On"
	}
	var b strings.Builder
	b.WriteString(m.styles.header.Render("Settings"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Dark interface : %s (press %s or enter to toggle)\n", dark, m.cfg.Keys.DarkMode))
	b.WriteString(fmt.Sprintf("State dir      : %s\n", m.cfg.StateDir))
	b.WriteString(fmt.Sprintf("Log file       : %s\n", m.cfg.LogFile))
	b.WriteString(fmt.Sprintf("Insights model : %s\n", m.cfg.Insights.Model))
	return b.String()
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	switch m.active {
	case tabCalendar:
		return fmt.Sprintf("%s/%s/%s/%s move day • %s/%s month • %s add • %s quit", k.Left, k.Down, k.Up, k.Right, k.PrevMonth, k.NextMonth, k.Add, k.Quit)
	case tabTasks:
		return fmt.Sprintf("%s/%s move • %s search • %s filter • %s toggle • %s delete • %s add • %s quit", k.Up, k.Down, k.Search, k.Filter, k.Toggle, k.Delete, k.Add, k.Quit)
	case tabInsights:
		return fmt.Sprintf("%s analyze • tab switch view • %s quit", k.Refresh, k.Quit)
	default:
		return fmt.Sprintf("tab switch view • %s add • %s dark mode • %s quit", k.Add, k.DarkMode, k.Quit)
	}
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}
