package views

import (
	"time"

	"remindpro/internal/task"
)

// maxDayMarkers caps the distinct category markers shown per day cell.
const maxDayMarkers = 3

// Cell is one slot in the month grid. Day 0 marks a leading blank used to
// align day 1 with its weekday column.
type Cell struct {
	Day        int
	Today      bool
	Selected   bool
	Categories []task.Category
}

// MonthGrid is a Sunday-start calendar month.
type MonthGrid struct {
	Year  int
	Month time.Month
	Cells []Cell
}

// BuildMonthGrid lays out the given month: leading blanks for the weekday
// offset of day 1, then one cell per day annotated with today/selected flags
// and up to maxDayMarkers distinct categories of tasks due that day, in
// collection order.
func BuildMonthGrid(year int, month time.Month, today, selected time.Time, tasks []task.Task) MonthGrid {
	g := MonthGrid{Year: year, Month: month}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	offset := int(first.Weekday()) // Sunday = 0
	days := DaysInMonth(year, month)

	g.Cells = make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		g.Cells = append(g.Cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
		g.Cells = append(g.Cells, Cell{
			Day:        day,
			Today:      sameDay(date, today),
			Selected:   !selected.IsZero() && sameDay(date, selected),
			Categories: dayCategories(tasks, date),
		})
	}
	return g
}

// DaysInMonth returns the day count of the month; day 0 of the next month is
// the last day of this one.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// PrevMonth and NextMonth step a (year, month) pair, normalizing across year
// boundaries.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	d := time.Date(year, month-1, 1, 0, 0, 0, 0, time.Local)
	return d.Year(), d.Month()
}

func NextMonth(year int, month time.Month) (int, time.Month) {
	d := time.Date(year, month+1, 1, 0, 0, 0, 0, time.Local)
	return d.Year(), d.Month()
}

func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func dayCategories(tasks []task.Task, date time.Time) []task.Category {
	var cats []task.Category
	for _, t := range tasks {
		if !t.DueOn(date) {
			continue
		}
		seen := false
		for _, c := range cats {
			if c == t.Category {
				seen = true
				break
			}
		}
		if seen {
			continue
		}
		cats = append(cats, t.Category)
		if len(cats) == maxDayMarkers {
			break
		}
	}
	return cats
}
