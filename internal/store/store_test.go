package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remindpro/internal/task"
	"remindpro/internal/views"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	return s, dir
}

func validDraft(title string) Draft {
	return Draft{
		Title:   title,
		DueDate: time.Date(2024, 6, 15, 9, 0, 0, 0, time.Local),
	}
}

func TestOpenEmpty(t *testing.T) {
	s, _ := openTestStore(t)
	assert.Empty(t, s.Tasks())
	assert.False(t, s.DarkMode())
}

func TestAddRequiresTitleAndDueDate(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Add(Draft{DueDate: time.Now()})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = s.Add(Draft{Title: "   ", DueDate: time.Now()})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = s.Add(Draft{Title: "pay rent"})
	assert.ErrorIs(t, err, ErrDueRequired)

	assert.Empty(t, s.Tasks(), "rejected drafts must not create tasks")
}

func TestAddAppliesDefaults(t *testing.T) {
	s, _ := openTestStore(t)

	got, err := s.Add(validDraft("pay rent"))
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, task.CategoryPersonal, got.Category)
	assert.Equal(t, task.PriorityMedium, got.Priority)
	assert.Equal(t, task.RecurrenceNone, got.Recurrence)
	assert.False(t, got.IsCompleted)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestAddPrepends(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Add(validDraft("first"))
	require.NoError(t, err)
	_, err = s.Add(validDraft("second"))
	require.NoError(t, err)

	tasks := s.Tasks()
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.Equal(t, "first", tasks[1].Title)
	assert.NotEqual(t, tasks[0].ID, tasks[1].ID)
}

func TestToggleTwiceRestores(t *testing.T) {
	s, _ := openTestStore(t)

	added, err := s.Add(validDraft("vat return"))
	require.NoError(t, err)

	s.Toggle(added.ID)
	require.True(t, s.Tasks()[0].IsCompleted)

	s.Toggle(added.ID)
	got := s.Tasks()[0]
	assert.False(t, got.IsCompleted)
	assert.Equal(t, added.Title, got.Title)
	assert.Equal(t, added.Category, got.Category)
	assert.True(t, added.DueDate.Equal(got.DueDate))
}

func TestToggleUnknownIDIsNoop(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.Add(validDraft("a"))
	require.NoError(t, err)

	s.Toggle("missing")
	assert.False(t, s.Tasks()[0].IsCompleted)
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.Add(validDraft("a"))
	require.NoError(t, err)

	s.Delete("missing")
	assert.Len(t, s.Tasks(), 1)
}

func TestDelete(t *testing.T) {
	s, _ := openTestStore(t)
	a, err := s.Add(validDraft("a"))
	require.NoError(t, err)
	_, err = s.Add(validDraft("b"))
	require.NoError(t, err)

	s.Delete(a.ID)
	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "b", tasks[0].Title)
}

func TestPersistenceRoundTrip(t *testing.T) {
	s, dir := openTestStore(t)

	added, err := s.Add(Draft{
		Title:       "File VAT",
		Category:    task.CategoryTaxes,
		Priority:    task.PriorityHigh,
		SubCategory: "BIR",
		Notes:       "before the deadline",
		DueDate:     time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
		Recurrence:  task.RecurrenceQuarterly,
	})
	require.NoError(t, err)
	s.SetDarkMode(true)

	reopened, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)

	tasks := reopened.Tasks()
	require.Len(t, tasks, 1)
	got := tasks[0]
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "File VAT", got.Title)
	assert.Equal(t, task.CategoryTaxes, got.Category)
	assert.Equal(t, task.PriorityHigh, got.Priority)
	assert.Equal(t, "BIR", got.SubCategory)
	assert.Equal(t, task.RecurrenceQuarterly, got.Recurrence)
	assert.True(t, added.DueDate.Equal(got.DueDate))
	assert.True(t, reopened.DarkMode())
}

func TestMalformedStateStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tasks.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "darkmode.json"), []byte("maybe"), 0o644))

	s, err := Open(dir, zerolog.Nop())
	require.NoError(t, err)
	assert.Empty(t, s.Tasks())
	assert.False(t, s.DarkMode())
}

func TestTasksReturnsCopy(t *testing.T) {
	s, _ := openTestStore(t)
	_, err := s.Add(validDraft("a"))
	require.NoError(t, err)

	tasks := s.Tasks()
	tasks[0].Title = "mutated"
	assert.Equal(t, "a", s.Tasks()[0].Title)
}

func TestOverdueScenario(t *testing.T) {
	s, _ := openTestStore(t)
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	added, err := s.Add(Draft{
		Title:    "File VAT",
		Category: task.CategoryTaxes,
		Priority: task.PriorityHigh,
		DueDate:  time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	overdue := views.FilterTasks(s.Tasks(), "", views.FilterOverdue, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, added.ID, overdue[0].ID)

	stats := views.ComputeStats(s.Tasks(), now)
	assert.Equal(t, 1, stats.ByCategory[task.CategoryTaxes])
	assert.Equal(t, 0, stats.Completed)

	s.Toggle(added.ID)

	assert.Empty(t, views.FilterTasks(s.Tasks(), "", views.FilterOverdue, now))
	stats = views.ComputeStats(s.Tasks(), now)
	assert.Equal(t, 0, stats.ByCategory[task.CategoryTaxes])
	assert.Equal(t, 1, stats.Completed)
}
