// Package views computes derived state from the task collection. Every
// function is pure: identical inputs, including the explicit now, yield
// identical outputs.
package views

import (
	"sort"
	"strings"
	"time"

	"remindpro/internal/task"
)

// Stats aggregates the collection at a single instant. ByCategory counts open
// tasks only and is zero-initialized for every category.
type Stats struct {
	Total      int
	Completed  int
	Overdue    int
	Upcoming   int
	ByCategory map[task.Category]int
}

func ComputeStats(tasks []task.Task, now time.Time) Stats {
	s := Stats{
		Total:      len(tasks),
		ByCategory: make(map[task.Category]int, len(task.Categories())),
	}
	for _, c := range task.Categories() {
		s.ByCategory[c] = 0
	}
	for _, t := range tasks {
		if t.IsCompleted {
			s.Completed++
			continue
		}
		if t.DueDate.Before(now) {
			s.Overdue++
		} else {
			s.Upcoming++
		}
		s.ByCategory[t.Category]++
	}
	return s
}

// Filter is the exclusive registry filter mode.
type Filter int

const (
	FilterAll Filter = iota
	FilterHigh
	FilterOverdue
	FilterBills
)

func Filters() []Filter {
	return []Filter{FilterAll, FilterHigh, FilterOverdue, FilterBills}
}

func (f Filter) Label() string {
	switch f {
	case FilterHigh:
		return "Priority"
	case FilterOverdue:
		return "Overdue"
	case FilterBills:
		return "Bills"
	default:
		return "All"
	}
}

// Next cycles to the following filter mode.
func (f Filter) Next() Filter {
	return Filter((int(f) + 1) % len(Filters()))
}

func (f Filter) matches(t task.Task, now time.Time) bool {
	switch f {
	case FilterHigh:
		return t.Priority == task.PriorityHigh && !t.IsCompleted
	case FilterOverdue:
		return t.Overdue(now)
	case FilterBills:
		return t.Category == task.CategoryBills && !t.IsCompleted
	default:
		return true
	}
}

// FilterTasks narrows the collection by a case-insensitive substring search
// on title and category, then by the exclusive filter mode, and sorts the
// result ascending by due date. The sort is stable, so equal due dates keep
// their prior relative order.
func FilterTasks(tasks []task.Task, query string, filter Filter, now time.Time) []task.Task {
	query = strings.ToLower(query)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if query != "" &&
			!strings.Contains(strings.ToLower(t.Title), query) &&
			!strings.Contains(strings.ToLower(string(t.Category)), query) {
			continue
		}
		if !filter.matches(t, now) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// TasksOn returns the tasks due on the same local calendar day as day, in
// collection order.
func TasksOn(tasks []task.Task, day time.Time) []task.Task {
	out := []task.Task{}
	for _, t := range tasks {
		if t.DueOn(day) {
			out = append(out, t)
		}
	}
	return out
}

// GroupProgress is the completed fraction within the given categories,
// 0 when the subset is empty.
func GroupProgress(tasks []task.Task, categories ...task.Category) float64 {
	in := func(c task.Category) bool {
		for _, g := range categories {
			if c == g {
				return true
			}
		}
		return false
	}
	var total, completed int
	for _, t := range tasks {
		if !in(t.Category) {
			continue
		}
		total++
		if t.IsCompleted {
			completed++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total)
}
