package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"remindpro/internal/store"
	"remindpro/internal/task"
)

// formState is the creation form: one text input walked across the fields,
// with enter advancing and the last enter submitting.
type formState struct {
	title       string
	notes       string
	category    string
	subCategory string
	priority    string
	due         string
	recurrence  string
	index       int
}

func formFields() []string {
	return []string{
		"title",
		"notes",
		"category (Personal/Business/Bills/Taxes/Custom)",
		"sub-category",
		"priority (Low/Medium/High)",
		"due date (YYYY-MM-DD [HH:MM])",
		"recurrence (None/Daily/Weekly/Monthly/Quarterly/Yearly)",
	}
}

func (f formState) currentLabel() string {
	return formFields()[f.index]
}

func (f formState) currentValue() string {
	switch f.index {
	case 0:
		return f.title
	case 1:
		return f.notes
	case 2:
		return f.category
	case 3:
		return f.subCategory
	case 4:
		return f.priority
	case 5:
		return f.due
	case 6:
		return f.recurrence
	default:
		return ""
	}
}

func (f *formState) setCurrentValue(v string) {
	switch f.index {
	case 0:
		f.title = v
	case 1:
		f.notes = v
	case 2:
		f.category = v
	case 3:
		f.subCategory = v
	case 4:
		f.priority = v
	case 5:
		f.due = v
	case 6:
		f.recurrence = v
	}
}

func (m Model) startForm() (tea.Model, tea.Cmd) {
	m.form = &formState{}
	m.input.SetValue("")
	m.input.Placeholder = m.form.currentLabel()
	m.input.Focus()
	m.status = "New task: enter to advance fields, tab/shift+tab to move, esc to cancel"
	return m, nil
}

func (m Model) updateFormMode(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel, "esc":
		m.form = nil
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "tab", "down":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index+1, len(formFields()))
		m.syncFormInput()
		return m, nil
	case "shift+tab", "up":
		m.form.setCurrentValue(m.input.Value())
		m.form.index = wrapIndex(m.form.index-1, len(formFields()))
		m.syncFormInput()
		return m, nil
	case m.cfg.Keys.Confirm, "enter":
		m.form.setCurrentValue(m.input.Value())
		if m.form.index >= len(formFields())-1 {
			return m.submitForm()
		}
		m.form.index++
		m.syncFormInput()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m *Model) syncFormInput() {
	m.input.SetValue(m.form.currentValue())
	m.input.Placeholder = m.form.currentLabel()
	m.status = fmt.Sprintf("Field %d of %d: %s", m.form.index+1, len(formFields()), m.form.currentLabel())
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	draft, err := m.form.draft()
	if err != nil {
		m.status = err.Error()
		return m, nil
	}
	t, err := m.store.Add(draft)
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	m.form = nil
	m.input.Blur()
	m.input.SetValue("")
	m.cursor = 0
	m.status = fmt.Sprintf("Added %q", t.Title)
	return m, nil
}

func (f formState) draft() (store.Draft, error) {
	d := store.Draft{
		Title:       strings.TrimSpace(f.title),
		Notes:       strings.TrimSpace(f.notes),
		SubCategory: strings.TrimSpace(f.subCategory),
	}
	if d.Title == "" {
		return d, fmt.Errorf("title cannot be empty")
	}

	if v := strings.TrimSpace(f.category); v != "" {
		c, err := task.ParseCategory(v)
		if err != nil {
			return d, err
		}
		d.Category = c
	}
	if v := strings.TrimSpace(f.priority); v != "" {
		p, err := task.ParsePriority(v)
		if err != nil {
			return d, err
		}
		d.Priority = p
	}
	if v := strings.TrimSpace(f.recurrence); v != "" {
		r, err := task.ParseRecurrence(v)
		if err != nil {
			return d, err
		}
		d.Recurrence = r
	}

	due, err := parseDue(f.due)
	if err != nil {
		return d, err
	}
	d.DueDate = due
	return d, nil
}

func parseDue(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, fmt.Errorf("due date cannot be empty")
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("due date invalid: want YYYY-MM-DD or YYYY-MM-DD HH:MM")
}

func (m Model) renderForm() string {
	if m.form == nil {
		return ""
	}
	fields := formFields()
	values := []string{
		m.form.title,
		m.form.notes,
		m.form.category,
		m.form.subCategory,
		m.form.priority,
		m.form.due,
		m.form.recurrence,
	}
	var b strings.Builder
	b.WriteString(m.styles.header.Render("New Task"))
	b.WriteString("\n\n")
	for i, name := range fields {
		prefix := " "
		if i == m.form.index {
			prefix = ">"
		}
		val := values[i]
		if i == m.form.index {
			val = m.input.View()
		} else if strings.TrimSpace(val) == "" {
			val = m.styles.muted.Render("(empty)")
		}
		label := strings.SplitN(name, " (", 2)[0]
		b.WriteString(fmt.Sprintf("%s %-12s : %s\n", prefix, label, val))
	}
	return b.String()
}
