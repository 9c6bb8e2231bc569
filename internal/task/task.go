// Package task defines the persistent task record and its closed
// classification enums.
package task

import (
	"fmt"
	"strings"
	"time"
)

// Category is a closed classification label driving grouping and iconography.
type Category string

const (
	CategoryPersonal Category = "Personal"
	CategoryBusiness Category = "Business"
	CategoryBills    Category = "Bills"
	CategoryTaxes    Category = "Taxes"
	CategoryCustom   Category = "Custom"
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CategoryPersonal, CategoryBusiness, CategoryBills, CategoryTaxes, CategoryCustom}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryBusiness, CategoryBills, CategoryTaxes, CategoryCustom:
		return true
	}
	return false
}

func ParseCategory(s string) (Category, error) {
	c := Category(normalizeEnum(s))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}

type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func ParsePriority(s string) (Priority, error) {
	p := Priority(normalizeEnum(s))
	if !p.Valid() {
		return "", fmt.Errorf("unknown priority %q", s)
	}
	return p, nil
}

// Recurrence is stored and displayed but never expanded into future
// occurrences.
type Recurrence string

const (
	RecurrenceNone      Recurrence = "None"
	RecurrenceDaily     Recurrence = "Daily"
	RecurrenceWeekly    Recurrence = "Weekly"
	RecurrenceMonthly   Recurrence = "Monthly"
	RecurrenceQuarterly Recurrence = "Quarterly"
	RecurrenceYearly    Recurrence = "Yearly"
)

func Recurrences() []Recurrence {
	return []Recurrence{RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly}
}

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceYearly:
		return true
	}
	return false
}

func ParseRecurrence(s string) (Recurrence, error) {
	r := Recurrence(normalizeEnum(s))
	if !r.Valid() {
		return "", fmt.Errorf("unknown recurrence %q", s)
	}
	return r, nil
}

func normalizeEnum(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Task is the sole persistent entity. JSON field names match the persisted
// state layout; timestamps serialize as RFC 3339.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Notes       string     `json:"notes,omitempty"`
	Category    Category   `json:"category"`
	SubCategory string     `json:"subCategory,omitempty"`
	Priority    Priority   `json:"priority"`
	DueDate     time.Time  `json:"dueDate"`
	Recurrence  Recurrence `json:"recurrence"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Overdue reports whether the task is open with a due date strictly in the
// past relative to now.
func (t Task) Overdue(now time.Time) bool {
	return !t.IsCompleted && t.DueDate.Before(now)
}

// DueOn reports whether the task's due date falls on the same local calendar
// day as day. Persisted timestamps may carry any offset, so the due date is
// converted to local time before comparing.
func (t Task) DueOn(day time.Time) bool {
	y1, m1, d1 := t.DueDate.In(time.Local).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
