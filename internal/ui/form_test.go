package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/task"
)

func TestFormDraftRejectsMissingFields(t *testing.T) {
	_, err := formState{due: "2024-06-15"}.draft()
	assert.Error(t, err)

	_, err = formState{title: "pay rent"}.draft()
	assert.Error(t, err)

	_, err = formState{title: "pay rent", due: "someday"}.draft()
	assert.Error(t, err)
}

func TestFormDraftParsesFields(t *testing.T) {
	f := formState{
		title:       "File VAT",
		notes:       "before the deadline",
		category:    "taxes",
		subCategory: "BIR",
		priority:    "high",
		due:         "2024-01-05 09:00",
		recurrence:  "quarterly",
	}

	d, err := f.draft()
	require.NoError(t, err)
	assert.Equal(t, "File VAT", d.Title)
	assert.Equal(t, task.CategoryTaxes, d.Category)
	assert.Equal(t, task.PriorityHigh, d.Priority)
	assert.Equal(t, task.RecurrenceQuarterly, d.Recurrence)
	assert.Equal(t, "BIR", d.SubCategory)
	assert.Equal(t, time.Date(2024, 1, 5, 9, 0, 0, 0, time.Local), d.DueDate)
}

func TestFormDraftDateOnly(t *testing.T) {
	d, err := formState{title: "gym", due: "2024-06-15"}.draft()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.Local), d.DueDate)
	// enums left blank default in the store
	assert.Empty(t, string(d.Category))
}

func TestFormDraftRejectsBadEnums(t *testing.T) {
	_, err := formState{title: "x", due: "2024-06-15", category: "groceries"}.draft()
	assert.Error(t, err)

	_, err = formState{title: "x", due: "2024-06-15", priority: "urgent"}.draft()
	assert.Error(t, err)
}

func TestFormFieldWalk(t *testing.T) {
	f := &formState{}
	require.Len(t, formFields(), 7)

	f.setCurrentValue("File VAT")
	assert.Equal(t, "File VAT", f.title)

	f.index = 5
	f.setCurrentValue("2024-01-05")
	assert.Equal(t, "2024-01-05", f.due)
	assert.Equal(t, "2024-01-05", f.currentValue())
}
