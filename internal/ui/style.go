package ui

import (
	"github.com/charmbracelet/lipgloss"

	"remindpro/internal/task"
)

type styles struct {
	dark bool

	header      lipgloss.Style
	subtitle    lipgloss.Style
	tabActive   lipgloss.Style
	tabInactive lipgloss.Style
	accent      lipgloss.Style
	muted       lipgloss.Style
	selected    lipgloss.Style
	overdue     lipgloss.Style
	done        lipgloss.Style
	pill        lipgloss.Style
	pillActive  lipgloss.Style
	card        lipgloss.Style
}

func newStyles(dark bool) styles {
	accent := lipgloss.Color("63")
	muted := lipgloss.Color("243")
	if dark {
		accent = lipgloss.Color("105")
		muted = lipgloss.Color("246")
	}

	s := styles{dark: dark}
	s.header = lipgloss.NewStyle().Bold(true).Foreground(accent)
	s.subtitle = lipgloss.NewStyle().Foreground(muted)
	s.tabActive = lipgloss.NewStyle().Bold(true).Foreground(accent).Underline(true)
	s.tabInactive = lipgloss.NewStyle().Foreground(muted)
	s.accent = lipgloss.NewStyle().Foreground(accent)
	s.muted = lipgloss.NewStyle().Foreground(muted)
	s.selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(accent)
	s.overdue = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	s.done = lipgloss.NewStyle().Faint(true).Strikethrough(true)
	s.pill = lipgloss.NewStyle().Foreground(muted).Padding(0, 1)
	s.pillActive = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(accent).Padding(0, 1)
	s.card = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(0, 1)
	return s
}

func (s styles) category(c task.Category) lipgloss.Style {
	a := task.Attributes(c)
	color := a.Light
	if s.dark {
		color = a.Dark
	}
	return lipgloss.NewStyle().Foreground(color)
}
